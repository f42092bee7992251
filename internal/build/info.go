// Package build exposes build-time metadata injected via ldflags.
package build

import "fmt"

// Version, Commit, and Branch are set at build time by:
//
//	-ldflags "-X github.com/joestump/devguide/internal/build.Version=v1.2.0 -X ...Commit=abc123"
var (
	Version = "dev"
	Commit  = "unknown"
	Branch  = "unknown"
)

// Summary is the one-line form printed by `devguide version`.
func Summary() string {
	return fmt.Sprintf("devguide %s (commit %s, branch %s)", Version, Commit, Branch)
}
