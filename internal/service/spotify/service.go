package spotify

import (
	"context"

	spotify_client "github.com/oshokin/spotify-preview/internal/client/spotify"
	"github.com/oshokin/spotify-preview/internal/config"
	"github.com/oshokin/spotify-preview/internal/logger"
)

// GetPreviewOptions controls how GetPreview treats a track without a preview.
type GetPreviewOptions struct {
	// RequirePreview makes a missing preview an error instead of an empty result.
	RequirePreview bool
}

// Service defines the interface for resolving track previews.
type Service interface {
	// GetPreview resolves caller input (a raw track ID or a track URL) to the
	// track's preview URL. An empty result with a nil error means the track
	// has no preview; passing nil options is allowed.
	GetPreview(ctx context.Context, track string, opts *GetPreviewOptions) (string, error)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client fetches embed pages from the Spotify web player.
	client spotify_client.Client
}

// NewService creates and returns a new instance of ServiceImpl.
func NewService(cfg *config.Config, client spotify_client.Client) Service {
	return &ServiceImpl{
		cfg:    cfg,
		client: client,
	}
}

// GetPreview sequences identifier resolution, the embed page fetch, and
// preview extraction. Resolver and client errors propagate unchanged; the
// only locally handled outcome is an absent preview, which yields either an
// empty result or *NoPreviewAvailableError depending on the options.
// There are no retries anywhere in this pipeline.
func (s *ServiceImpl) GetPreview(
	ctx context.Context,
	track string,
	opts *GetPreviewOptions,
) (string, error) {
	if opts == nil {
		opts = &GetPreviewOptions{}
	}

	// Identifier errors are raised before any network I/O happens.
	trackID, err := ResolveTrackID(ctx, track)
	if err != nil {
		return "", err
	}

	document, err := s.client.FetchEmbedPage(ctx, trackID)
	if err != nil {
		return "", err
	}

	previewURL, ok := extractPreviewURL(document)
	if !ok {
		logger.Debugf(ctx, "No preview found for track %s", trackID)

		if opts.RequirePreview {
			return "", &NoPreviewAvailableError{TrackID: trackID}
		}

		return "", nil
	}

	logger.Debugf(ctx, "Resolved preview for track %s: %s", trackID, previewURL)

	return previewURL, nil
}
