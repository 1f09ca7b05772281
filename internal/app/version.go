package app

import "fmt"

const appName = "issuetracker"

// Version, Commit and BuildTime are set via ldflags at build time, e.g.
// go build -ldflags "-X github.com/heartmarshall/issuetracker-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported in startup logs and by the /health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
