package main

import (
	"os"

	"grit.dev/grit/internal/cli"
	"grit.dev/grit/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		output.NewSplog().Error("Error: %v", err)
		os.Exit(1)
	}
}
