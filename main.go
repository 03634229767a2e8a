// Package main is the lazycsv entry point.
package main

import (
	"fmt"
	"os"

	"github.com/funkybooboo/lazycsv/cmd"
)

// Overridden via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(fmt.Sprintf("%s (commit %s, built %s)", version, commit, date))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
