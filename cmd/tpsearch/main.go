package main

import (
	"os"

	"github.com/katalvlaran/transversal/cmd/tpsearch/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// Errors are printed by the printer package; only the code is left.
	os.Exit(commands.Execute())
}
