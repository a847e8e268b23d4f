package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	profileKeyPrefix     = "profile:"
	roomPlayersKeyPrefix = "room_players:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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
	}, nil
}

// SaveProfile persists a profile to Redis
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	profile := input.Profile

	// Ensure the profile has an ID
	if profile.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, profileKeyPrefix+profile.ID, profileJSON, 0)

	// If the player is in a room, add them to the room's player set
	if profile.CurrentRoomCode != "" {
		pipe.SAdd(ctx, roomPlayersKeyPrefix+profile.CurrentRoomCode, profile.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by player ID from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	profileJSON, err := r.client.Get(ctx, profileKeyPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// GetProfilesInRoom retrieves every profile seated in a room
func (r *redisRepository) GetProfilesInRoom(ctx context.Context, input *GetProfilesInRoomInput) (*GetProfilesInRoomOutput, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	playerIDs, err := r.client.SMembers(ctx, roomPlayersKeyPrefix+input.RoomCode).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for room: %w", err)
	}

	// If there are no players, return an empty slice
	if len(playerIDs) == 0 {
		return &GetProfilesInRoomOutput{
			Profiles: []*models.Profile{},
		}, nil
	}
	sort.Strings(playerIDs)

	// Get all profiles in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(playerIDs))
	for i, playerID := range playerIDs {
		cmds[i] = pipe.Get(ctx, profileKeyPrefix+playerID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	profiles := make([]*models.Profile, 0, len(playerIDs))
	for i, cmd := range cmds {
		profileJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Profile was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get profile %s: %w", playerIDs[i], err)
		}

		var profile models.Profile
		if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile %s: %w", playerIDs[i], err)
		}

		profiles = append(profiles, &profile)
	}

	return &GetProfilesInRoomOutput{
		Profiles: profiles,
	}, nil
}

// UpdateProfileRoom updates a player's current room in Redis
func (r *redisRepository) UpdateProfileRoom(ctx context.Context, input *UpdateProfileRoomInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	profile, err := r.GetProfile(ctx, &GetProfileInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()

	// Leave the previous room's set
	if profile.CurrentRoomCode != "" && profile.CurrentRoomCode != input.RoomCode {
		pipe.SRem(ctx, roomPlayersKeyPrefix+profile.CurrentRoomCode, profile.ID)
	}

	profile.CurrentRoomCode = input.RoomCode

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	pipe.Set(ctx, profileKeyPrefix+profile.ID, profileJSON, 0)

	if input.RoomCode != "" {
		pipe.SAdd(ctx, roomPlayersKeyPrefix+input.RoomCode, profile.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update player room: %w", err)
	}

	return nil
}
