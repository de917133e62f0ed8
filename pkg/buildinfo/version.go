// Package buildinfo exposes the version stamped into the binary at build
// time:
//
//	go build -ldflags "-X github.com/chenzc24/padring/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/chenzc24/padring/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/chenzc24/padring/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds report "dev".
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the version template used by the cobra root command.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
