package spotify

import "fmt"

// InvalidTrackIDError reports a raw identifier that is not a well-formed
// Spotify track ID.
type InvalidTrackIDError struct {
	// TrackID is the offending identifier.
	TrackID string
}

// Error implements the error interface.
func (e *InvalidTrackIDError) Error() string {
	return fmt.Sprintf("invalid Spotify track ID: %q", e.TrackID)
}

// InvalidTrackURLError reports a URL that does not point at a Spotify track.
type InvalidTrackURLError struct {
	// URL is the offending URL.
	URL string
}

// Error implements the error interface.
func (e *InvalidTrackURLError) Error() string {
	return fmt.Sprintf("invalid Spotify track URL: %q", e.URL)
}

// NoPreviewAvailableError reports a track whose embed page carries no preview URL.
// It is only raised when the caller explicitly requires a preview;
// otherwise a missing preview is an empty result, not an error.
type NoPreviewAvailableError struct {
	// TrackID is the resolved identifier of the track without a preview.
	TrackID string
}

// Error implements the error interface.
func (e *NoPreviewAvailableError) Error() string {
	return fmt.Sprintf("no preview available for track %s", e.TrackID)
}
