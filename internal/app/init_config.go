package app

import (
	"context"

	"github.com/oshokin/spotify-preview/internal/config"
	"github.com/oshokin/spotify-preview/internal/logger"
)

// ExecuteInitConfigCommand creates a starter configuration file with the
// built-in defaults so users have something to edit.
func ExecuteInitConfigCommand(ctx context.Context, configFilename string) {
	if err := config.WriteDefaultConfig(configFilename); err != nil {
		logger.Fatalf(ctx, "Failed to create config file: %v", err)
	}

	if configFilename == "" {
		configFilename = config.DefaultConfigFilename
	}

	logger.Infof(ctx, "Created config file: %s", configFilename)
}
