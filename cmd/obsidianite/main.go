package main

import (
	"fmt"
	"os"

	"obsidianite.dev/obsidianite/internal/cli"
	oberrors "obsidianite.dev/obsidianite/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// Never let token material reach the terminal
		fmt.Fprintln(os.Stderr, "Error: "+oberrors.Redact(err.Error(), ""))
		os.Exit(1)
	}
}
