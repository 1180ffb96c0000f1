package tui

import "github.com/charmbracelet/lipgloss"

// Obsidian's default dark theme palette.
const (
	ObsidianPurple       = "#483699" // main purple accent
	ObsidianPurpleHover  = "#4d3ca6"
	ObsidianPurpleLight  = "#7b6cd9"
	ObsidianPurpleBright = "#8273e6"
	ObsidianBlack        = "#0d0d0d"
	ObsidianGray         = "#2e3134"
	ObsidianGrayLight    = "#525252"
)

// Status colors
const (
	ColorSuccess = "#10b981"
	ColorWarning = "#f59e0b"
	ColorError   = "#ef4444"

	ColorTextPrimary   = "#ffffff"
	ColorTextSecondary = "#a1a1aa"
	ColorTextMuted     = "#71717a"
)

// Shared styles
var (
	PrimaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ObsidianPurpleBright))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ObsidianPurpleLight))
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess))
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWarning))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorError))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTextMuted))
)

// gradient used for the banner, dark to bright purple
var gradientColors = []string{
	ObsidianPurple,
	ObsidianPurpleHover,
	ObsidianPurpleLight,
	ObsidianPurpleBright,
}
