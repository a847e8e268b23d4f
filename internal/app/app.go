// Package app wires the Redis-backed repositories and services shared by the
// bot and the HTTP server.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/pyramid/internal/common/clock"
	"github.com/KirkDiggler/pyramid/internal/common/uuid"
	"github.com/KirkDiggler/pyramid/internal/config"
	"github.com/KirkDiggler/pyramid/internal/deck"
	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/repositories/player"
	"github.com/KirkDiggler/pyramid/internal/repositories/room"
	"github.com/KirkDiggler/pyramid/internal/repositories/sip_ledger"
	"github.com/KirkDiggler/pyramid/internal/services/game"
	"github.com/KirkDiggler/pyramid/internal/services/messaging"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// App holds the long-lived dependencies of a process
type App struct {
	Redis     *redis.Client
	Clock     clock.Clock
	Game      game.Service
	Messaging messaging.Service
}

// New connects to Redis and builds the game and messaging services
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	a, err := build(client, cfg)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return a, nil
}

func build(client *redis.Client, cfg *config.Config) (*App, error) {
	clk := clock.New()
	ids := uuid.New()

	roomRepo, err := room.NewRedis(&room.Config{
		RedisClient: client,
		RoomTTL:     cfg.RoomTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create room repository: %w", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: client,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}

	ledgerRepo, err := sip_ledger.NewRedis(&sip_ledger.Config{
		RedisClient:   client,
		UUIDGenerator: ids,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sip ledger repository: %w", err)
	}

	eng, err := engine.New(&engine.Config{
		Dealer:                deck.New(&deck.Config{UUIDGenerator: ids}),
		Clock:                 clk,
		UUIDGenerator:         ids,
		MaxPlayers:            cfg.MaxPlayers,
		StrictChallengeReveal: cfg.StrictChallengeReveal,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	gameSvc, err := game.New(&game.Config{
		RoomRepo:      roomRepo,
		PlayerRepo:    playerRepo,
		SipLedgerRepo: ledgerRepo,
		Engine:        eng,
		Clock:         clk,
		UUIDGenerator: ids,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	msgSvc, err := messaging.New(&messaging.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &App{
		Redis:     client,
		Clock:     clk,
		Game:      gameSvc,
		Messaging: msgSvc,
	}, nil
}

// Close releases the Redis connection
func (a *App) Close() error {
	return a.Redis.Close()
}
