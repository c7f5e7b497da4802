// mockdb CLI - mock HTTP endpoints and in-memory JSON documents.
package main

import "github.com/getmockd/mockdb/pkg/cli"

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
