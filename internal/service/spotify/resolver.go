package spotify

import (
	"context"
	"regexp"
	"strings"

	"github.com/oshokin/spotify-preview/internal/logger"
	"github.com/oshokin/spotify-preview/internal/utils"
)

const (
	// spotifyHostMarker distinguishes URL input from raw identifiers.
	spotifyHostMarker = "spotify.com"
	// trackPathSegment is the path segment that track URLs must contain.
	trackPathSegment = "/track/"
)

var (
	// trackIDPattern matches a complete raw track identifier:
	// exactly 22 case-sensitive alphanumeric characters.
	//
	//nolint:gochecknoglobals // This is an immutable, pre-compiled regex pattern used as a constant.
	trackIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{22}$`)

	// trackURLPattern captures the identifier following a /track/ path segment,
	// terminated by a query string or the end of the URL, so trailing
	// parameters like ?si=... are stripped.
	//
	//nolint:gochecknoglobals // This is an immutable, pre-compiled regex pattern used as a constant.
	trackURLPattern = regexp.MustCompile(`/track/(?P<ID>[a-zA-Z0-9]+)(?:\?|$)`)
)

// IsValidTrackID reports whether trackID is a well-formed raw Spotify track identifier.
func IsValidTrackID(trackID string) bool {
	return trackIDPattern.MatchString(trackID)
}

// ValidateTrackID checks a raw track identifier and fails with
// *InvalidTrackIDError when it does not match the 22-character
// alphanumeric format.
func ValidateTrackID(trackID string) error {
	if !IsValidTrackID(trackID) {
		return &InvalidTrackIDError{TrackID: trackID}
	}

	return nil
}

// ExtractTrackIDFromURL extracts the track identifier from a Spotify track URL.
// It fails with *InvalidTrackURLError when the URL has no /track/ segment or
// no identifier follows it. The extracted segment is returned as-is:
// URL-derived identifiers are not re-validated against the raw-ID format.
func ExtractTrackIDFromURL(trackURL string) (string, error) {
	if !strings.Contains(trackURL, trackPathSegment) {
		return "", &InvalidTrackURLError{URL: trackURL}
	}

	trackID := utils.ExtractNamedGroup(trackURLPattern, "ID", trackURL)
	if trackID == "" {
		return "", &InvalidTrackURLError{URL: trackURL}
	}

	return trackID, nil
}

// ResolveTrackID normalizes caller input, either a raw identifier or a track
// URL, into a track ID. It is pure and performs no network I/O.
func ResolveTrackID(ctx context.Context, input string) (string, error) {
	if strings.Contains(input, spotifyHostMarker) {
		trackID, err := ExtractTrackIDFromURL(input)
		if err != nil {
			return "", err
		}

		logger.Debugf(ctx, "Extracted track ID %s from URL", trackID)

		return trackID, nil
	}

	if err := ValidateTrackID(input); err != nil {
		return "", err
	}

	return input, nil
}
