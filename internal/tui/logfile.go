package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If OBSIDIANITE_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.obsidianite/logs/obsidianite.log
func GetLogFilePath() string {
	if customPath := os.Getenv("OBSIDIANITE_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "obsidianite.log"
	}

	return filepath.Join(homeDir, ".obsidianite", "logs", "obsidianite.log")
}
