package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TearDownTest() {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)

	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(0, cfg.RedisDB)
	s.Equal("info", cfg.LogLevel)
	s.Equal(":8080", cfg.HTTPAddr)
	s.Equal(12*time.Hour, cfg.TokenTTL)
	s.Equal(7, cfg.MaxPlayers)
	s.False(cfg.StrictChallengeReveal)
	s.Equal(24*time.Hour, cfg.RoomTTL)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("REDIS_ADDR", "redis:6380")
	s.T().Setenv("MAX_PLAYERS", "4")
	s.T().Setenv("STRICT_CHALLENGE_REVEAL", "true")
	s.T().Setenv("TOKEN_TTL", "30m")

	cfg, err := Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)

	s.Equal("redis:6380", cfg.RedisAddr)
	s.Equal(4, cfg.MaxPlayers)
	s.True(cfg.StrictChallengeReveal)
	s.Equal(30*time.Minute, cfg.TokenTTL)
}

func (s *ConfigTestSuite) TestDotEnvFile() {
	path := filepath.Join(s.T().TempDir(), "test.env")
	s.Require().NoError(os.WriteFile(path, []byte("GUILD_ID=guild-42\n"), 0o600))
	s.T().Cleanup(func() { os.Unsetenv("GUILD_ID") })

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("guild-42", cfg.GuildID)
}

func (s *ConfigTestSuite) TestRejectsNonPositiveMaxPlayers() {
	s.T().Setenv("MAX_PLAYERS", "0")

	_, err := Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().Error(err)
}

func (s *ConfigTestSuite) TestSetupLogging() {
	cfg := &Config{LogLevel: "debug"}
	cfg.SetupLogging()
	s.Equal(zerolog.DebugLevel, zerolog.GlobalLevel())

	cfg.LogLevel = "nonsense"
	cfg.SetupLogging()
	s.Equal(zerolog.InfoLevel, zerolog.GlobalLevel())
}
