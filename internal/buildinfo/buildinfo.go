// Package buildinfo holds version details injected at build time:
//
//	go build -ldflags "-X github.com/ironsheep/color-spin-mcp/internal/buildinfo.Version=v1.2.3"
package buildinfo

import "fmt"

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
}
