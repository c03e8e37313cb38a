package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lueurxax/social-preview/internal/core/domain"
	cerrors "github.com/lueurxax/social-preview/internal/core/errors"
)

type Config struct {
	Platform     string `env:"CARD_PLATFORM" envDefault:"twitter"`
	SnapshotPath string `env:"SNAPSHOT_PATH" envDefault:"-"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	if !domain.Platform(cfg.Platform).Valid() {
		return nil, fmt.Errorf("%w: %q", cerrors.ErrUnknownPlatform, cfg.Platform)
	}

	return cfg, nil
}

// Social returns the configured target platform.
func (c *Config) Social() domain.Platform {
	return domain.Platform(c.Platform)
}
