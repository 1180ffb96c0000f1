package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const title = `
  ____  _         _     _ _             _ _
 / __ \| |       (_)   | (_)           (_) |
| |  | | |__  ___ _  __| |_  __ _ _ __  _| |_ ___
| |  | | '_ \/ __| |/ _` + "`" + ` | |/ _` + "`" + ` | '_ \| | __/ _ \
| |__| | |_) \__ \ | (_| | | (_| | | | | | ||  __/
 \____/|_.__/|___/_|\__,_|_|\__,_|_| |_|_|\__\___|
`

// Banner renders the application banner with a purple gradient and the
// version tucked under the right edge.
func Banner(version string) string {
	lines := strings.Split(strings.Trim(title, "\n"), "\n")

	var b strings.Builder
	for i, line := range lines {
		color := gradientColors[i%len(gradientColors)]
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	width := lipgloss.Width(b.String())
	versionLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ObsidianPurpleLight)).
		Width(width).
		Align(lipgloss.Right).
		Render("v" + version)
	b.WriteString(versionLine)
	b.WriteString("\n")

	return b.String()
}

// Panel renders content inside a rounded, purple-bordered box with an
// optional title in the border.
func Panel(titleText, content string) string {
	border := lipgloss.RoundedBorder()
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(ObsidianPurple)).
		Padding(0, 2)

	if titleText != "" {
		content = PrimaryStyle.Render(titleText) + "\n" + content
	}
	return style.Render(content)
}
