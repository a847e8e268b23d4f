package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds every setting the binaries read from the environment
type Config struct {
	// Redis connection
	RedisAddr     string `env:"REDIS_ADDR,default=localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB,default=0"`

	// LogLevel is any level zerolog.ParseLevel accepts
	LogLevel string `env:"LOG_LEVEL,default=info"`

	// HTTP front-end
	HTTPAddr     string        `env:"HTTP_ADDR,default=:8080"`
	ClientOrigin string        `env:"CLIENT_ORIGIN,default=http://localhost:5173"`
	JWTSecret    string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL,default=12h"`

	// Discord front-end
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Game rules
	MaxPlayers            int  `env:"MAX_PLAYERS,default=7"`
	StrictChallengeReveal bool `env:"STRICT_CHALLENGE_REVEAL,default=false"`

	// RoomTTL is how long an untouched room document survives
	RoomTTL time.Duration `env:"ROOM_TTL,default=24h"`
}

// Load reads an optional .env file and decodes the environment into a Config
func Load(files ...string) (*Config, error) {
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load(files...)

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	if cfg.MaxPlayers < 1 {
		return nil, fmt.Errorf("MAX_PLAYERS must be positive, got %d", cfg.MaxPlayers)
	}

	return cfg, nil
}

// SetupLogging applies the configured level to the global zerolog logger
func (c *Config) SetupLogging() {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
