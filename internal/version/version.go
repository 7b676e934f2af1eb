// Package version carries build identity stamped in via ldflags:
//
//	go build -ldflags "-X github.com/lattice-lang/tools/internal/version.Version=v0.3.0"
//
// Binaries built without flags report every field as "unknown".
package version

import "fmt"

var (
	Version   = "unknown"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String formats the stamped identity for a --version flag, e.g.
// "latdoc v0.3.0 (commit 4f9c2aa, built 2026-08-21T10:04:00Z)".
func String(binary string) string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", binary, Version, GitCommit, BuildTime)
}
