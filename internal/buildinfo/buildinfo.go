package buildinfo

import "time"

// Set via -ldflags at build time, e.g.
//
//	go build -ldflags "-X github.com/xelth-com/eckshop/internal/buildinfo.Version=1.2.0"
var (
	Version    = "dev"
	BuildTime  string // when the binary was compiled
	CommitHash string // short git commit hash
)

// StartTime is recorded when the process starts
var StartTime = time.Now().UTC().Format(time.RFC3339)

// Info is the build metadata reported by the status endpoint
type Info struct {
	Version    string `json:"version"`
	BuildTime  string `json:"build_time,omitempty"`
	CommitHash string `json:"commit_hash,omitempty"`
	StartTime  string `json:"start_time"`
}

// Get returns the build metadata of the running binary
func Get() Info {
	return Info{
		Version:    Version,
		BuildTime:  BuildTime,
		CommitHash: CommitHash,
		StartTime:  StartTime,
	}
}
