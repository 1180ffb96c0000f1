package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"obsidianite.dev/obsidianite/internal/git"
)

// ChangeTable renders a change set as a rounded-border table of
// status → files, mirroring the panel shown before a push and after a pull.
func ChangeTable(title string, cs *git.ChangeSet) string {
	rows := [][]string{}
	appendRow := func(status string, files []string) {
		if len(files) == 0 {
			return
		}
		rows = append(rows, []string{status, strings.Join(files, "\n")})
	}

	appendRow("Modified", cs.Modified)
	appendRow("Added", cs.Added)
	appendRow("Deleted", cs.Deleted)
	appendRow("Renamed", cs.Renamed)
	appendRow("Untracked", cs.Untracked)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(ObsidianPurple))).
		Headers("Status", "Files").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return PrimaryStyle.Padding(0, 1)
			}
			if col == 0 {
				return AccentStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Rows(rows...)

	out := t.Render()
	if title != "" {
		out = PrimaryStyle.Render(title) + "\n" + out
	}
	return out
}
