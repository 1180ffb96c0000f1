// Package main is the entry point for the obsidianite terminal UI, the
// full-screen counterpart of the obsidianite CLI.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"obsidianite.dev/obsidianite/internal/tui/app"
)

var (
	version = "dev"
)

func main() {
	m, err := app.New(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running obsidianite: %v\n", err)
		os.Exit(1)
	}
}
