// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Riddle sources.
const (
	SourceFiles    = "files"
	SourceEmbedded = "embedded"
	SourceSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Source     string `env:"RIDDLE_SOURCE" envDefault:"files"`
	RiddleFile string `env:"RIDDLES_FILE" envDefault:"riddles.txt"`
	HintFile   string `env:"HINTS_FILE" envDefault:"hints.txt"`
	DBPath     string `env:"RIDDLE_DB" envDefault:"./data/riddles.db"`

	Seed      uint64 `env:"RIDDLE_SEED"` // 0 = random
	Daily     bool   `env:"RIDDLE_DAILY"`
	DailySalt string `env:"DAILY_SALT" envDefault:"riddle-me-this"`

	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	Color    bool   `env:"RIDDLE_COLOR" envDefault:"true"`
}

// Load parses the environment into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Source = strings.ToLower(strings.TrimSpace(cfg.Source))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the selected source has what it needs.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceFiles:
		if c.RiddleFile == "" || c.HintFile == "" {
			return fmt.Errorf("RIDDLES_FILE and HINTS_FILE cannot be empty")
		}
	case SourceEmbedded:
	case SourceSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("RIDDLE_DB cannot be empty")
		}
	default:
		return fmt.Errorf("RIDDLE_SOURCE must be files, embedded or sqlite (got %q)", c.Source)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	return nil
}
