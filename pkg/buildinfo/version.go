// Package buildinfo exposes the version stamped into acficons binaries.
//
// Values are injected at link time:
//
//	go build -ldflags "-X github.com/goosestudio/acficons/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/goosestudio/acficons/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/goosestudio/acficons/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/acficons
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a multi-line summary for `acficons version`.
func String() string {
	return fmt.Sprintf("version: %s\ncommit:  %s\nbuilt:   %s", Version, Commit, Date)
}

// Template is the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}

// UserAgent identifies acficons in log output and generated files.
func UserAgent() string {
	return "acficons/" + Version
}
