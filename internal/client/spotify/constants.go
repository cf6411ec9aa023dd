package spotify

const (
	// embedTrackURIPath is the URI path component for track embed pages.
	embedTrackURIPath = "embed/track"

	// defaultMaxResponseSize caps how much of the embed page is read
	// when no limit is configured.
	defaultMaxResponseSize = 2 * 1024 * 1024 // 2 MB
)
