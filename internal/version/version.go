// Package version holds build information for the embedscript binary.
package version

// Set via ldflags during build:
// -X github.com/tacogips/embedscript/internal/version.Version=x.y.z
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
