// Package build provides build-time information for the skel binary.
// Version is read from the embedded VERSION file or set via ldflags during build.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// These can be overridden via ldflags:
//
//	-X github.com/tacogips/skel/internal/build.version=x.y.z
//	-X github.com/tacogips/skel/internal/build.commit=abc1234
//	-X github.com/tacogips/skel/internal/build.date=2026-01-01T00:00:00Z
var (
	version string
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// Commit returns the git commit the binary was built from.
func Commit() string {
	return commit
}

// Date returns the build date.
func Date() string {
	return date
}
