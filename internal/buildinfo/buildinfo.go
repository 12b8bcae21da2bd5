package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/gbistila/bidupgradestest/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("bidcalc %s (commit=%s, date=%s)", Version, Commit, Date)
}
