package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/charroster/internal/factory"
	redisstorage "github.com/mcoot/charroster/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	FilePath    string `env:"ROSTER_FILE" envDefault:"data/input.csv"`
	Storage     string `env:"ROSTER_STORAGE" envDefault:"file"`
	RedisURL    string `env:"ROSTER_REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisRoster string `env:"ROSTER_REDIS_KEY" envDefault:"default"`
	Output      string `env:"ROSTER_OUTPUT" envDefault:"text"`
	LogLevel    string `env:"ROSTER_LOG_LEVEL" envDefault:"warn"`
	Verbose     bool   `env:"ROSTER_VERBOSE"`
}

// LoadConfig returns a Config populated from the environment, with defaults
// for anything unset
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel returns the configured log level; Verbose forces debug
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// FactoryConfig translates the CLI configuration into application wiring
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	factoryCfg := factory.Config{
		StorageType: c.Storage,
		FilePath:    c.FilePath,
		Logger:      logger,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.Roster = c.RedisRoster
		factoryCfg.RedisConfig = &redisCfg
	}
	return factoryCfg
}
