// Package version holds build metadata stamped by the mage build through
// -ldflags -X.
package version

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String is the text printed by psr --version.
func String() string {
	return fmt.Sprintf("psr version %s\nCommit: %s\nBuilt: %s\n", Version, CommitHash, BuildDate)
}
