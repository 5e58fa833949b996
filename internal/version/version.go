// Package version records build identity, overridden at link time via
// -ldflags "-X github.com/teranos/texref/internal/version.Version=...".
package version

import "fmt"

var (
	// Version is the semantic version of this build.
	Version = "0.1.0"
	// Commit is the VCS revision the binary was built from.
	Commit = "dev"
)

// String returns the human-readable version line.
func String() string {
	return fmt.Sprintf("texref %s (%s)", Version, Commit)
}
