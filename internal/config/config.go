// Package config reads settings from the environment, optionally seeded by
// a .env file. Command-line flags override these values in the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when Load is called without files.
const DefaultEnvFile = ".env"

// Config holds the environment settings.
type Config struct {
	// DB is the SQLite archive path. Empty disables archiving.
	DB string `env:"XIVA_DB"`

	// RedisAddr is the report cache address. Empty disables caching.
	RedisAddr string `env:"XIVA_REDIS_ADDR"`

	// CacheTTL is how long cached reports live.
	CacheTTL time.Duration `env:"XIVA_CACHE_TTL" envDefault:"24h"`

	// PolicyDir holds CUE tables that replace the embedded defaults.
	PolicyDir string `env:"XIVA_POLICY_DIR"`

	// Format is the default output format, "text" or "json".
	Format string `env:"XIVA_FORMAT" envDefault:"text"`

	// MaxEvents bounds the events a single recording may contain.
	MaxEvents int `env:"XIVA_MAX_EVENTS" envDefault:"2000000"`

	Verbose bool `env:"XIVA_VERBOSE"`
}

// Load reads env files into the process environment, then parses Config.
// Variables already set in the environment win over file values. A missing
// default .env is not an error; a missing explicit file is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", DefaultEnvFile, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that the environment parser cannot.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("XIVA_FORMAT: unsupported format %q (want text or json)", c.Format)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("XIVA_CACHE_TTL: must not be negative")
	}
	if c.MaxEvents < 0 {
		return fmt.Errorf("XIVA_MAX_EVENTS: must not be negative")
	}
	return nil
}
