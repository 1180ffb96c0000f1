package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePorcelain(t *testing.T) {
	t.Parallel()

	lines := []string{
		" M daily/2024-01-01.md",
		"MM notes/both.md",
		"A  new-tracked.md",
		" D gone.md",
		"R  old-name.md -> new-name.md",
		"?? inbox.md",
		"",
	}

	cs := parsePorcelain(lines)

	require.Equal(t, []string{"daily/2024-01-01.md", "notes/both.md"}, cs.Modified)
	require.Equal(t, []string{"new-tracked.md"}, cs.Added)
	require.Equal(t, []string{"gone.md"}, cs.Deleted)
	require.Equal(t, []string{"old-name.md -> new-name.md"}, cs.Renamed)
	require.Equal(t, []string{"inbox.md"}, cs.Untracked)
	require.Equal(t, 5, cs.Total())
	require.False(t, cs.Empty())
}

func TestParsePorcelainEmpty(t *testing.T) {
	t.Parallel()

	cs := parsePorcelain(nil)
	require.True(t, cs.Empty())
	require.Equal(t, 0, cs.Total())
}

func TestParseNameStatus(t *testing.T) {
	t.Parallel()

	lines := []string{
		"M\tnotes/edited.md",
		"A\tnotes/added.md",
		"D\tnotes/removed.md",
		"R100\tnotes/old.md\tnotes/new.md",
		"garbage-without-tab",
	}

	cs := parseNameStatus(lines)

	require.Equal(t, []string{"notes/edited.md"}, cs.Modified)
	require.Equal(t, []string{"notes/added.md"}, cs.Added)
	require.Equal(t, []string{"notes/removed.md"}, cs.Deleted)
	require.Equal(t, []string{"notes/old.md -> notes/new.md"}, cs.Renamed)
	require.Empty(t, cs.Untracked)
}
