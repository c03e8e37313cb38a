package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lueurxax/social-preview/internal/core/card"
	cerrors "github.com/lueurxax/social-preview/internal/core/errors"
	"github.com/lueurxax/social-preview/internal/platform/config"
	"github.com/lueurxax/social-preview/internal/platform/snapshot"
)

func main() {
	// Setup logger
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set log level
	setLogLevel(cfg.LogLevel)

	snap, err := snapshot.Decode(openSnapshot(cfg, &logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to decode snapshot")
	}

	builder := card.NewBuilder(&logger)

	result, err := builder.Build(*snap, cfg.Social())
	if err != nil {
		// The two build failures get distinct user-visible messages.
		switch {
		case errors.Is(err, cerrors.ErrNotEnoughData):
			logger.Fatal().Err(err).Msg("Page lacks social metadata")
		case errors.Is(err, cerrors.ErrTwitterNoCardFound):
			logger.Fatal().Err(err).Msg("Page has no recognized Twitter card type")
		default:
			logger.Fatal().Err(err).Msg("Failed to build card")
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(result); err != nil {
		logger.Fatal().Err(err).Msg("Failed to encode card")
	}
}

// openSnapshot returns the snapshot input stream: stdin for "-", otherwise
// the configured file path.
func openSnapshot(cfg *config.Config, logger *zerolog.Logger) io.Reader {
	if cfg.SnapshotPath == "-" {
		return os.Stdin
	}

	f, err := os.Open(cfg.SnapshotPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open snapshot file")
	}

	return f
}

// setLogLevel sets the global log level based on the configuration.
func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
