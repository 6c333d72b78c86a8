// Package main is the entry point for the configdemo CLI, the example
// application for the cobra-config library.
//
// All functionality lives in internal/cli, which defines the cobra
// commands, and internal/settings, which merges the configuration layers.
package main

import (
	"github.com/p2p-org/cobra-config/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.Version = version

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
