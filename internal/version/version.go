// Package version exposes build metadata injected at link time.
package version

// Build information. Populated at build time via -ldflags.
var (
	// Version is the semantic version of the binary.
	Version = "1.0.0"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns just the version number.
func Short() string {
	return Version
}

// Full returns the version, commit, and build time in a single line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
