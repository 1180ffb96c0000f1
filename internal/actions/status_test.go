package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"obsidianite.dev/obsidianite/internal/config"
	oberrors "obsidianite.dev/obsidianite/internal/errors"
	"obsidianite.dev/obsidianite/internal/git"
	"obsidianite.dev/obsidianite/testhelpers"
)

func TestStatusFailsWithoutMapping(t *testing.T) {
	rt, _ := newTestContext(t)

	err := Status(context.Background(), rt)
	require.ErrorIs(t, err, oberrors.ErrNotConfigured)
}

func TestStatusWarnsWhenVaultIsGone(t *testing.T) {
	rt, mock := newTestContext(t)
	configureMapping(t, rt) // /vault does not exist on disk

	err := Status(context.Background(), rt)
	require.NoError(t, err)
	require.False(t, mock.Called("ChangedFiles"), "no change scan for a missing vault")
}

func TestStatusShowsPendingChanges(t *testing.T) {
	rt, mock := newTestContext(t)

	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, rt.Store.SetMapping(config.Mapping{
		VaultPath:    repo.Dir,
		RepoFullName: "octocat/notes",
		RemoteURL:    "https://github.com/octocat/notes.git",
	}))
	mock.ChangeSet = &git.ChangeSet{Untracked: []string{"inbox.md"}}

	err = Status(context.Background(), rt)
	require.NoError(t, err)
	require.True(t, mock.Called("ChangedFiles"))
}
