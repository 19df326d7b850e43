package main

import (
	"github.com/tacogips/embedscript/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version info from build-time variables
	cli.SetVersionInfo(version, gitCommit, buildDate)

	// Execute the root command
	cli.Execute()
}
