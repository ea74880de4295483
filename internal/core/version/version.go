// Package version carries the build stamp of the storefront binaries
package version

import "fmt"

// Stamped at link time:
//
//	go build -ldflags "-X storefront/internal/core/version.version=v0.3.0 \
//	  -X storefront/internal/core/version.commit=$(git rev-parse --short HEAD) \
//	  -X storefront/internal/core/version.date=$(date -u +%F)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is the build stamp of one binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info is the stamp of the API server
func Info() BuildInfo { return For("storefront-api") }

// For returns the stamp under another binary name
func For(service string) BuildInfo {
	return BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
}

// String renders "v0.3.0 (commit: abc123, built: 2026-10-01)"
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, b.Commit, b.Date)
}
