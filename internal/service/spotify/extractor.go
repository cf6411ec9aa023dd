package spotify

import (
	"regexp"
	"strings"

	"github.com/oshokin/spotify-preview/internal/utils"
)

// audioPreviewPattern locates the embedded audioPreview JSON fragment
// in the embed page and captures its url field.
//
//nolint:gochecknoglobals // This is an immutable, pre-compiled regex pattern used as a constant.
var audioPreviewPattern = regexp.MustCompile(`"audioPreview"\s*:\s*\{\s*"url"\s*:\s*"(?P<URL>[^"]*)"`)

// extractPreviewURL scans an embed page document for the preview URL.
// A candidate is accepted only when it is non-empty and contains "https://",
// a cheap sanity check against malformed matches rather than a full URL parse.
// The second return value is false when the preview is absent; absence is
// never an error at this stage.
func extractPreviewURL(document string) (string, bool) {
	candidate := utils.ExtractNamedGroup(audioPreviewPattern, "URL", document)
	if candidate == "" || !strings.Contains(candidate, "https://") {
		return "", false
	}

	return candidate, true
}
