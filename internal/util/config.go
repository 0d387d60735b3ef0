package util

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings and flags.
type Config struct {
	Store       string `env:"SANTAEXE_STORE" envDefault:"sqlite"` // sqlite|postgres|memory
	DSN         string `env:"DATABASE_URL"`
	DBPath      string `env:"SANTAEXE_DB_PATH"`
	UnlockAll   bool   `env:"SANTAEXE_UNLOCK_ALL"` // development only
	TargetMonth int    `env:"SANTAEXE_TARGET_MONTH" envDefault:"12"`
	Today       string `env:"SANTAEXE_TODAY"` // YYYY-MM-DD, development only
	Theme       string `env:"SANTAEXE_THEME" envDefault:"nordpol"`
	LogFile     string `env:"SANTAEXE_LOG_FILE"`
	LogLevel    string `env:"SANTAEXE_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	switch c.Store {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("config: SANTAEXE_STORE must be sqlite, postgres or memory, got %q", c.Store)
	}
	if c.Store == "postgres" && c.DSN == "" {
		return fmt.Errorf("config: postgres store needs DATABASE_URL")
	}
	if c.TargetMonth < 1 || c.TargetMonth > 12 {
		return fmt.Errorf("config: SANTAEXE_TARGET_MONTH must be 1..12, got %d", c.TargetMonth)
	}
	if _, err := c.FixedDate(); err != nil {
		return err
	}
	return nil
}

// FixedDate parses Today. The zero time means no date is pinned.
func (c Config) FixedDate() (time.Time, error) {
	if c.Today == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, c.Today, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: SANTAEXE_TODAY: %w", err)
	}
	// noon keeps the calendar day stable across DST shifts
	return t.Add(12 * time.Hour), nil
}
