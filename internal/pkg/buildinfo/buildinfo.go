// Package buildinfo хранит метаданные сборки. Значения задаются при сборке:
//
//	go build -ldflags "-X github.com/dispenser-locator/internal/pkg/buildinfo.CommitHash=$(git rev-parse HEAD) \
//	  -X github.com/dispenser-locator/internal/pkg/buildinfo.BuildTimestamp=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

var (
	CommitHash     = "dev"
	BuildTimestamp = "unknown"
)
