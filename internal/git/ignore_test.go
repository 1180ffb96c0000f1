package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureIgnoreFileWritesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	wrote, err := EnsureIgnoreFile(dir)
	require.NoError(t, err)
	require.True(t, wrote, "expected a fresh .gitignore to be written")

	content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	require.Equal(t, DefaultIgnoreRules, string(content))
	require.Contains(t, string(content), ".obsidian/workspace")
	require.Contains(t, string(content), ".env")
}

func TestEnsureIgnoreFileIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	wrote, err := EnsureIgnoreFile(dir)
	require.NoError(t, err)
	require.True(t, wrote)

	first, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)

	wrote, err = EnsureIgnoreFile(dir)
	require.NoError(t, err)
	require.False(t, wrote, "second run must not rewrite the file")

	second, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	require.Equal(t, string(first), string(second), "rules must not be duplicated")
}

func TestEnsureIgnoreFileKeepsUserRules(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	custom := "# my own rules\n*.tmp\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(custom), 0644))

	wrote, err := EnsureIgnoreFile(dir)
	require.NoError(t, err)
	require.False(t, wrote)

	content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	require.Equal(t, custom, string(content))
}
