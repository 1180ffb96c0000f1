package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"obsidianite.dev/obsidianite/internal/git"
	"obsidianite.dev/obsidianite/testhelpers"
)

func TestInitOnExistingRepoIsNoop(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	require.True(t, git.IsRepository(scene.VaultDir))
	require.NoError(t, git.Init(ctx, scene.VaultDir))
	require.True(t, git.IsRepository(scene.VaultDir))
}

func TestChangedFilesCategorizes(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	require.NoError(t, scene.Repo.CreateNoteAndCommit("tracked.md", "# Tracked\n"))
	require.NoError(t, scene.Repo.WriteNote("tracked.md", "# Tracked, edited\n"))
	require.NoError(t, scene.Repo.WriteNote("inbox.md", "# New\n"))

	cs, err := git.ChangedFiles(ctx, scene.VaultDir)
	require.NoError(t, err)
	require.Equal(t, []string{"tracked.md"}, cs.Modified)
	require.Equal(t, []string{"inbox.md"}, cs.Untracked)
	require.Equal(t, 2, cs.Total())
}

func TestStageCommitPush(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	require.NoError(t, scene.Repo.WriteNote("first.md", "# First note\n"))

	dirty, err := git.HasChanges(ctx, scene.VaultDir)
	require.NoError(t, err)
	require.True(t, dirty)

	require.NoError(t, git.StageAll(ctx, scene.VaultDir))
	require.NoError(t, git.Commit(ctx, scene.VaultDir, "Initial commit by Obsidianite"))
	require.NoError(t, git.PushUpstream(ctx, scene.VaultDir))

	testhelpers.ExpectClean(t, scene.Repo)
	testhelpers.ExpectHeadMessage(t, scene.Repo, "Initial commit by Obsidianite")

	// The bare remote now carries the commit
	remote := &testhelpers.GitRepo{Dir: scene.RemotePath}
	sha, err := remote.RunGitCommandAndGetOutput("rev-parse", "main")
	require.NoError(t, err)
	head := testhelpers.Must(scene.Repo.HeadRevision())
	require.Equal(t, head, sha)
}

func TestPullIntegratesRemoteChanges(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	require.NoError(t, scene.Repo.CreateNoteAndCommit("first.md", "# First\n"))
	require.NoError(t, git.PushUpstream(ctx, scene.VaultDir))

	// Up-to-date pull reports identical revisions
	oldRev, newRev, err := git.Pull(ctx, scene.VaultDir)
	require.NoError(t, err)
	require.Equal(t, oldRev, newRev)

	// A second machine pushes a new note
	other := scene.CloneRemote(t, "other-machine")
	require.NoError(t, other.CreateNoteAndCommit("from-other.md", "# Hello\n"))
	require.NoError(t, other.RunGitCommand("push", "origin", "HEAD:main"))

	oldRev, newRev, err = git.Pull(ctx, scene.VaultDir)
	require.NoError(t, err)
	require.NotEqual(t, oldRev, newRev)

	cs, err := git.DiffSummary(ctx, scene.VaultDir, oldRev, newRev)
	require.NoError(t, err)
	require.Equal(t, []string{"from-other.md"}, cs.Added)
}

func TestSetRemoteReplacesOrigin(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	require.NoError(t, git.SetRemote(ctx, scene.VaultDir, "https://github.com/octocat/notes.git"))

	url, err := scene.Repo.RunGitCommandAndGetOutput("remote", "get-url", "origin")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/octocat/notes.git", url)
}
