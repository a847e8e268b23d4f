package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/roomsync"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix    = "room:"
	channelKeyPrefix = "room_channel:"
	activeRoomsKey   = "active_rooms"

	eventsSuffix  = ":events"
	updatesSuffix = ":updates"
	channelSuffix = ":channel"

	// maxEvents bounds the per-room event log
	maxEvents = 500

	subscriptionBuffer = 16
)

var (
	// ErrRoomNotFound is returned when a room does not exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomExists is returned when a room code is already taken
	ErrRoomExists = errors.New("room already exists")

	// ErrVersionConflict is returned when the document moved on since the caller read it
	ErrVersionConflict = errors.New("room was updated by someone else")

	// ErrInvalidDelta is returned when a delta does not advance the version by one
	ErrInvalidDelta = errors.New("delta must advance the version by one")
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// RoomTTL expires idle rooms, zero keeps them forever
	RoomTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed room repository
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

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.RoomTTL,
	}, nil
}

func roomKey(code string) string {
	return roomKeyPrefix + code
}

func eventsKey(code string) string {
	return roomKeyPrefix + code + eventsSuffix
}

func updatesChannel(code string) string {
	return roomKeyPrefix + code + updatesSuffix
}

func roomChannelKey(code string) string {
	return roomKeyPrefix + code + channelSuffix
}

// CreateRoom stores the initial document of a room
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) error {
	if input == nil || input.State == nil || input.State.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	created, err := r.client.SetNX(ctx, roomKey(input.State.RoomID), stateJSON, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	if !created {
		return ErrRoomExists
	}

	if err := r.client.SAdd(ctx, activeRoomsKey, input.State.RoomID).Err(); err != nil {
		return fmt.Errorf("failed to index room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room document from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	raw, err := r.client.Get(ctx, roomKey(input.RoomCode)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return decodeRoom(raw)
}

func decodeRoom(raw []byte) (*GetRoomOutput, error) {
	var snap roomsync.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}
	state, err := roomsync.Decode(snap)
	if err != nil {
		return nil, err
	}
	return &GetRoomOutput{
		State:    state,
		Snapshot: snap,
	}, nil
}

// GetRoomByChannel retrieves the room linked to a chat channel
func (r *redisRepository) GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*GetRoomOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	code, err := r.client.Get(ctx, channelKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room code for channel: %w", err)
	}

	return r.GetRoom(ctx, &GetRoomInput{
		RoomCode: code,
	})
}

// LinkChannel points a chat channel at a room
func (r *redisRepository) LinkChannel(ctx context.Context, input *LinkChannelInput) error {
	if input == nil || input.ChannelID == "" || input.RoomCode == "" {
		return errors.New("input, channel ID and room code cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, channelKeyPrefix+input.ChannelID, input.RoomCode, r.ttl)
	pipe.Set(ctx, roomChannelKey(input.RoomCode), input.ChannelID, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to link channel: %w", err)
	}

	return nil
}

// Publish applies a delta under an optimistic version check. The stored document
// must still be at BaseVersion; the merged document is written and broadcast in
// one MULTI/EXEC.
func (r *redisRepository) Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}
	if input.Delta.Version() != input.BaseVersion+1 {
		return nil, ErrInvalidDelta
	}

	key := roomKey(input.RoomCode)
	var merged roomsync.Snapshot

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to get room: %w", err)
		}

		var current roomsync.Snapshot
		if err := json.Unmarshal(raw, &current); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}
		if current.Version() != input.BaseVersion {
			return ErrVersionConflict
		}

		merged = roomsync.Merge(current, input.Delta)
		mergedJSON, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		finished := false
		if phase, ok := input.Delta["currentPhase"]; ok {
			var p models.Phase
			if err := json.Unmarshal(phase, &p); err == nil && p == models.PhaseGameOver {
				finished = true
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, mergedJSON, r.ttl)
			pipe.Publish(ctx, updatesChannel(input.RoomCode), mergedJSON)
			if finished {
				pipe.SRem(ctx, activeRoomsKey, input.RoomCode)
			}
			return nil
		})
		return err
	}, key)

	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil, ErrVersionConflict
		}
		if errors.Is(err, ErrVersionConflict) || errors.Is(err, ErrRoomNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to publish room: %w", err)
	}

	return &PublishOutput{
		Snapshot: merged,
	}, nil
}

// Subscribe streams every document published for a room
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, updatesChannel(input.RoomCode))
	// Wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to room: %w", err)
	}

	out := make(chan roomsync.Snapshot, subscriptionBuffer)
	done := make(chan struct{})
	messages := pubsub.Channel()

	go func() {
		defer close(out)
		for {
			select {
			case <-done:
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var snap roomsync.Snapshot
				if err := json.Unmarshal([]byte(msg.Payload), &snap); err != nil {
					log.Warn().Err(err).Str("room", input.RoomCode).Msg("skipping malformed room update")
					continue
				}
				select {
				case out <- snap:
				case <-done:
					return
				}
			}
		}
	}()

	return NewSubscription(out, func() error {
		close(done)
		return pubsub.Close()
	}), nil
}

// AppendEvents pushes events onto the room log, keeping the newest maxEvents
func (r *redisRepository) AppendEvents(ctx context.Context, input *AppendEventsInput) error {
	if input == nil || input.RoomCode == "" {
		return errors.New("input and room code cannot be empty")
	}
	if len(input.Events) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(input.Events))
	for _, event := range input.Events {
		eventJSON, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		values = append(values, eventJSON)
	}

	key := eventsKey(input.RoomCode)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -maxEvents, -1)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append events: %w", err)
	}

	return nil
}

// GetEvents reads the room log in order
func (r *redisRepository) GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	raws, err := r.client.LRange(ctx, eventsKey(input.RoomCode), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events := make([]*models.Event, 0, len(raws))
	for _, raw := range raws {
		var event models.Event
		if err := json.Unmarshal([]byte(raw), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		if event.ID <= input.AfterID {
			continue
		}
		events = append(events, &event)
	}

	if input.Limit > 0 && len(events) > input.Limit {
		events = events[len(events)-input.Limit:]
	}

	return &GetEventsOutput{
		Events: events,
	}, nil
}

// GetActiveRooms lists rooms that are not over yet
func (r *redisRepository) GetActiveRooms(ctx context.Context, input *GetActiveRoomsInput) (*GetActiveRoomsOutput, error) {
	codes, err := r.client.SMembers(ctx, activeRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active rooms: %w", err)
	}

	return &GetActiveRoomsOutput{
		RoomCodes: codes,
	}, nil
}

// DeleteRoom removes a room, its log and its channel link
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomCode == "" {
		return errors.New("input and room code cannot be empty")
	}

	channelID, err := r.client.Get(ctx, roomChannelKey(input.RoomCode)).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to get room channel: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, roomKey(input.RoomCode), eventsKey(input.RoomCode), roomChannelKey(input.RoomCode))
	if channelID != "" {
		pipe.Del(ctx, channelKeyPrefix+channelID)
	}
	pipe.SRem(ctx, activeRoomsKey, input.RoomCode)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}
