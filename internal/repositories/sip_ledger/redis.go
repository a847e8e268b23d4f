package sip_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/pyramid/internal/common/uuid"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sipKeyPrefix        = "sip:"
	roomSipsKeyPrefix   = "room_sips:"
	roomSeqKeyPrefix    = "room_sips_seq:"
	roomStatsKeyPrefix  = "room_sip_stats:"
	playerSipsKeyPrefix = "player_sips:"
	givenField          = ":given"
	takenField          = ":taken"
)

// Config holds configuration for the Redis sip ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator mints record ids, defaults to google/uuid
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed sip ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		uuid:   ids,
	}, nil
}

// AddSipRecord adds a sip record to the ledger
func (r *redisRepository) AddSipRecord(ctx context.Context, input *AddSipRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.ID == "" {
		return errors.New("sip record ID cannot be empty")
	}
	if record.RoomID == "" {
		return errors.New("sip record room ID cannot be empty")
	}
	if record.Amount <= 0 {
		return errors.New("sip record amount must be positive")
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal sip record: %w", err)
	}

	// Order records by a per-room counter so same-instant transfers keep their order
	seq, err := r.client.Incr(ctx, roomSeqKeyPrefix+record.RoomID).Result()
	if err != nil {
		return fmt.Errorf("failed to sequence sip record: %w", err)
	}
	score := float64(seq)

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, sipKeyPrefix+record.ID, recordJSON, 0)
	pipe.ZAdd(ctx, roomSipsKeyPrefix+record.RoomID, redis.Z{Score: score, Member: record.ID})

	statsKey := roomStatsKeyPrefix + record.RoomID
	if record.FromPlayerID != "" {
		pipe.ZAdd(ctx, playerSipsKeyPrefix+record.FromPlayerID+":from", redis.Z{
			Score:  float64(record.Timestamp.UnixNano()),
			Member: record.ID,
		})
		pipe.HIncrBy(ctx, statsKey, record.FromPlayerID+givenField, int64(record.Amount))
	}
	if record.ToPlayerID != "" {
		pipe.ZAdd(ctx, playerSipsKeyPrefix+record.ToPlayerID+":to", redis.Z{
			Score:  float64(record.Timestamp.UnixNano()),
			Member: record.ID,
		})
		pipe.HIncrBy(ctx, statsKey, record.ToPlayerID+takenField, int64(record.Amount))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add sip record: %w", err)
	}

	return nil
}

// CreateSipRecords stores engine transfers as ledger records
func (r *redisRepository) CreateSipRecords(ctx context.Context, input *CreateSipRecordsInput) (*CreateSipRecordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.RoomID == "" {
		return nil, errors.New("room ID cannot be empty")
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	records := make([]*models.SipRecord, 0, len(input.Transfers))
	for _, transfer := range input.Transfers {
		record := &models.SipRecord{
			ID:           r.uuid.NewUUID(),
			RoomID:       input.RoomID,
			FromPlayerID: transfer.FromPlayerID,
			ToPlayerID:   transfer.ToPlayerID,
			Amount:       transfer.Amount,
			Reason:       transfer.Reason,
			Timestamp:    timestamp,
		}
		if err := r.AddSipRecord(ctx, &AddSipRecordInput{Record: record}); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return &CreateSipRecordsOutput{
		Records: records,
	}, nil
}

// GetSipRecordsForRoom retrieves a room's ledger in recording order
func (r *redisRepository) GetSipRecordsForRoom(ctx context.Context, input *GetSipRecordsForRoomInput) (*GetSipRecordsForRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	ids, err := r.client.ZRange(ctx, roomSipsKeyPrefix+input.RoomID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get sip IDs for room: %w", err)
	}

	records, err := r.fetch(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &GetSipRecordsForRoomOutput{
		Records: records,
	}, nil
}

// GetSipRecordsForPlayer retrieves every record a player gave or received
func (r *redisRepository) GetSipRecordsForPlayer(ctx context.Context, input *GetSipRecordsForPlayerInput) (*GetSipRecordsForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	fromCmd := pipe.ZRange(ctx, playerSipsKeyPrefix+input.PlayerID+":from", 0, -1)
	toCmd := pipe.ZRange(ctx, playerSipsKeyPrefix+input.PlayerID+":to", 0, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get sip IDs for player: %w", err)
	}

	// Combine and deduplicate
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, id := range append(fromCmd.Val(), toCmd.Val()...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	records, err := r.fetch(ctx, ids)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	return &GetSipRecordsForPlayerOutput{
		Records: records,
	}, nil
}

// fetch loads records by id in the given order, skipping ones deleted meanwhile
func (r *redisRepository) fetch(ctx context.Context, ids []string) ([]*models.SipRecord, error) {
	if len(ids) == 0 {
		return []*models.SipRecord{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, sipKeyPrefix+id)
	}
	// redis.Nil for missing records is handled per command
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	records := make([]*models.SipRecord, 0, len(ids))
	for i, cmd := range cmds {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get sip record %s: %w", ids[i], err)
		}

		var record models.SipRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sip record %s: %w", ids[i], err)
		}
		records = append(records, &record)
	}

	return records, nil
}

// GetRoomTotals sums what each player gave and took in a room
func (r *redisRepository) GetRoomTotals(ctx context.Context, input *GetRoomTotalsInput) (*GetRoomTotalsOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, roomStatsKeyPrefix+input.RoomID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room totals: %w", err)
	}

	totals := make(map[string]*Totals)
	for field, value := range fields {
		amount, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse total %s: %w", field, err)
		}

		var playerID string
		var given bool
		switch {
		case strings.HasSuffix(field, givenField):
			playerID, given = strings.TrimSuffix(field, givenField), true
		case strings.HasSuffix(field, takenField):
			playerID = strings.TrimSuffix(field, takenField)
		default:
			continue
		}

		t, ok := totals[playerID]
		if !ok {
			t = &Totals{}
			totals[playerID] = t
		}
		if given {
			t.Given = amount
		} else {
			t.Taken = amount
		}
	}

	return &GetRoomTotalsOutput{
		Totals: totals,
	}, nil
}

// DeleteSipRecords removes a room's ledger
func (r *redisRepository) DeleteSipRecords(ctx context.Context, input *DeleteSipRecordsInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	out, err := r.GetSipRecordsForRoom(ctx, &GetSipRecordsForRoomInput{RoomID: input.RoomID})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	for _, record := range out.Records {
		pipe.Del(ctx, sipKeyPrefix+record.ID)
		if record.FromPlayerID != "" {
			pipe.ZRem(ctx, playerSipsKeyPrefix+record.FromPlayerID+":from", record.ID)
		}
		if record.ToPlayerID != "" {
			pipe.ZRem(ctx, playerSipsKeyPrefix+record.ToPlayerID+":to", record.ID)
		}
	}
	pipe.Del(ctx, roomSipsKeyPrefix+input.RoomID, roomSeqKeyPrefix+input.RoomID, roomStatsKeyPrefix+input.RoomID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete sip records: %w", err)
	}

	return nil
}
