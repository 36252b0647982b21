package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/aalvaropc/lumen/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const AppName = "lumen"

func String() string {
	return fmt.Sprintf("%s %s (commit=%s, date=%s)", AppName, Version, Commit, Date)
}

// UserAgent is sent on every horizon request.
func UserAgent() string {
	return AppName + "/" + Version
}
