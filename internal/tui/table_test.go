package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"obsidianite.dev/obsidianite/internal/git"
)

func init() {
	// Pin the color profile so rendered output is stable in CI
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestChangeTable(t *testing.T) {
	cs := &git.ChangeSet{
		Modified:  []string{"daily/2024-01-01.md"},
		Untracked: []string{"inbox.md"},
	}

	out := ChangeTable("Changes to be committed", cs)
	require.Contains(t, out, "Changes to be committed")
	require.Contains(t, out, "Status")
	require.Contains(t, out, "Modified")
	require.Contains(t, out, "daily/2024-01-01.md")
	require.Contains(t, out, "Untracked")
	require.Contains(t, out, "inbox.md")
	require.NotContains(t, out, "Deleted", "empty groups are omitted")
}

func TestChangeTableWithoutTitle(t *testing.T) {
	cs := &git.ChangeSet{Added: []string{"a.md"}}

	out := ChangeTable("", cs)
	require.Contains(t, out, "Added")
	require.Contains(t, out, "a.md")
}

func TestBannerCarriesVersion(t *testing.T) {
	out := Banner("1.2.3")
	require.Contains(t, out, "v1.2.3")
}
