package actions

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	oberrors "obsidianite.dev/obsidianite/internal/errors"
	"obsidianite.dev/obsidianite/internal/github"
	"obsidianite.dev/obsidianite/internal/runtime"
)

func withMockGitHub(rt *runtime.Context) *github.MockClient {
	client := &github.MockClient{Login: "octocat"}
	rt.NewGitHubClient = func(_ context.Context, _ string) github.Client {
		return client
	}
	return client
}

func TestInitCreatesRepoAndPushes(t *testing.T) {
	rt, mock := newTestContext(t)
	client := withMockGitHub(rt)
	vault := filepath.Join(t.TempDir(), "vault")

	err := Init(context.Background(), rt, InitOptions{
		VaultPath: vault,
		RepoName:  "notes",
		Token:     testToken,
	})
	require.NoError(t, err)

	// The private repository was created and the vault pushed upstream
	require.Equal(t, []string{"notes"}, client.Created)
	require.True(t, mock.Called("EnsureIgnoreFile"))
	require.True(t, mock.Called("Init"))
	require.True(t, mock.Called("RenameBranchMain"))
	require.True(t, mock.Called("PushUpstream"))

	// Fresh repo without commits gets an initial commit
	require.Equal(t, []string{"Initial commit by Obsidianite"}, mock.Messages)

	// The remote carries the token, the stored mapping does not
	require.Len(t, mock.RemoteURLs, 1)
	require.Contains(t, mock.RemoteURLs[0], testToken)

	mapping, err := rt.Store.Mapping()
	require.NoError(t, err)
	require.Equal(t, "octocat/notes", mapping.RepoFullName)
	require.Equal(t, "https://github.com/octocat/notes.git", mapping.RemoteURL)
	require.NotContains(t, mapping.RemoteURL, testToken)

	token, err := rt.Store.Token()
	require.NoError(t, err)
	require.Equal(t, testToken, token)
}

func TestInitSkipsInitialCommitWhenClean(t *testing.T) {
	rt, mock := newTestContext(t)
	withMockGitHub(rt)
	mock.Commits = true // repo already has history
	vault := filepath.Join(t.TempDir(), "vault")

	err := Init(context.Background(), rt, InitOptions{
		VaultPath: vault,
		RepoName:  "notes",
		Token:     testToken,
	})
	require.NoError(t, err)
	require.False(t, mock.Called("Commit"))
	require.True(t, mock.Called("PushUpstream"))
}

func TestInitUseExistingMissingRepo(t *testing.T) {
	rt, mock := newTestContext(t)
	withMockGitHub(rt)
	vault := filepath.Join(t.TempDir(), "vault")

	err := Init(context.Background(), rt, InitOptions{
		VaultPath:   vault,
		RepoName:    "notes",
		Token:       testToken,
		UseExisting: true,
	})
	require.ErrorIs(t, err, oberrors.ErrRepoNotFound)
	require.Empty(t, mock.Calls, "vault must stay untouched when the repo is missing")

	_, err = rt.Store.Mapping()
	require.ErrorIs(t, err, oberrors.ErrNotConfigured)
}

func TestInitUseExistingRepo(t *testing.T) {
	rt, mock := newTestContext(t)
	client := withMockGitHub(rt)
	client.Repos = map[string]*github.RepoInfo{
		"notes": {Name: "notes", FullName: "octocat/notes", Private: true},
	}
	vault := filepath.Join(t.TempDir(), "vault")

	err := Init(context.Background(), rt, InitOptions{
		VaultPath:   vault,
		RepoName:    "notes",
		Token:       testToken,
		UseExisting: true,
	})
	require.NoError(t, err)
	require.Empty(t, client.Created)
	require.True(t, mock.Called("PushUpstream"))
}

func TestInitRequiresToken(t *testing.T) {
	rt, mock := newTestContext(t)
	withMockGitHub(rt)
	vault := filepath.Join(t.TempDir(), "vault")

	err := Init(context.Background(), rt, InitOptions{
		VaultPath: vault,
		RepoName:  "notes",
	})
	require.ErrorIs(t, err, oberrors.ErrNoToken)
	require.Empty(t, mock.Calls)
}

func TestInitRejectsBadRepoName(t *testing.T) {
	rt, mock := newTestContext(t)
	withMockGitHub(rt)
	vault := filepath.Join(t.TempDir(), "vault")

	err := Init(context.Background(), rt, InitOptions{
		VaultPath: vault,
		RepoName:  "bad name",
		Token:     testToken,
	})
	require.Error(t, err)
	require.Empty(t, mock.Calls)
}
