package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	spotify_client "github.com/oshokin/spotify-preview/internal/client/spotify"
	"github.com/oshokin/spotify-preview/internal/config"
	"github.com/oshokin/spotify-preview/internal/logger"
	spotify_service "github.com/oshokin/spotify-preview/internal/service/spotify"
)

// ExecuteRootCommand is the entry point for the application.
// It initializes the Spotify client, sets up the preview service,
// and resolves each of the provided tracks in turn, printing the
// preview URL to stdout.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, tracks []string) {
	client, err := spotify_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Spotify client: %v", err)
	}

	service := spotify_service.NewService(cfg, client)
	options := &spotify_service.GetPreviewOptions{
		RequirePreview: cfg.RequirePreview,
	}

	var failedCount int

	for _, track := range tracks {
		// The request ID ties together the log lines of a single resolution.
		requestID := uuid.NewString()

		logger.DebugKV(ctx, "Resolving preview",
			"request_id", requestID,
			"track", track)

		previewURL, err := service.GetPreview(ctx, track, options)
		if err != nil {
			failedCount++

			logger.ErrorKV(ctx, "Failed to resolve preview",
				"request_id", requestID,
				"track", track,
				"error", err)

			continue
		}

		if previewURL == "" {
			logger.WarnKV(ctx, "Track has no preview",
				"request_id", requestID,
				"track", track)

			continue
		}

		fmt.Println(previewURL)
	}

	if failedCount > 0 {
		logger.Fatalf(ctx, "Failed to resolve %d of %d tracks", failedCount, len(tracks))
	}
}
