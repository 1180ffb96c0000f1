package github

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	oberrors "obsidianite.dev/obsidianite/internal/errors"
)

func TestGetOrCreateReturnsExisting(t *testing.T) {
	t.Parallel()

	client := &MockClient{
		Repos: map[string]*RepoInfo{
			"notes": {Name: "notes", FullName: "octocat/notes", Private: true},
		},
	}

	full, err := GetOrCreatePrivateRepo(context.Background(), client, "notes", true)
	require.NoError(t, err)
	require.Equal(t, "octocat/notes", full)
	require.Empty(t, client.Created, "existing repository must not be recreated")
}

func TestGetOrCreateCreatesMissing(t *testing.T) {
	t.Parallel()

	client := &MockClient{}

	full, err := GetOrCreatePrivateRepo(context.Background(), client, "notes", true)
	require.NoError(t, err)
	require.Equal(t, "octocat/notes", full)
	require.Equal(t, []string{"notes"}, client.Created)
	require.True(t, client.Repos["notes"].Private)
}

func TestGetOrCreateUseExistingMissing(t *testing.T) {
	t.Parallel()

	client := &MockClient{}

	_, err := GetOrCreatePrivateRepo(context.Background(), client, "notes", false)
	require.ErrorIs(t, err, oberrors.ErrRepoNotFound)
	require.Empty(t, client.Created)
}

func TestGetOrCreatePropagatesCreateError(t *testing.T) {
	t.Parallel()

	boom := errors.New("api quota exceeded")
	client := &MockClient{CreateErr: boom}

	_, err := GetOrCreatePrivateRepo(context.Background(), client, "notes", true)
	require.ErrorIs(t, err, boom)
}
