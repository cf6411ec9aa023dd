// Package version exposes build-time version information.
// The variables are populated by the linker via -ldflags during release builds
// and fall back to development defaults otherwise.
package version

// Build-time variables, overridden by the linker.
//
//nolint:gochecknoglobals // These are set via -ldflags at build time.
var (
	// Version is the semantic version of the application.
	Version = "1.0.0"
	// Commit is the git commit hash the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare semantic version.
func Short() string {
	return Version
}

// Full returns the version, commit hash, and build timestamp in a single line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
