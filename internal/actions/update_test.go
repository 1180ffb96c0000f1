package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"obsidianite.dev/obsidianite/internal/git"
)

func TestUpdatePullsThenPushes(t *testing.T) {
	rt, mock := newTestContext(t)
	configureMapping(t, rt)
	mock.PullOldRev = "abc123"
	mock.PullNewRev = "abc123"
	mock.ChangeSet = &git.ChangeSet{Modified: []string{"daily.md"}}

	err := Update(context.Background(), rt, PushOptions{AssumeYes: true})
	require.NoError(t, err)

	require.Less(t, callIndex(t, mock, "Pull"), callIndex(t, mock, "Push"),
		"pull must run before push")
}

func TestUpdatePullFailurePreventsPush(t *testing.T) {
	rt, mock := newTestContext(t)
	configureMapping(t, rt)
	mock.PullErr = errors.New("could not resolve host")
	mock.ChangeSet = &git.ChangeSet{Modified: []string{"daily.md"}}

	err := Update(context.Background(), rt, PushOptions{AssumeYes: true})
	require.Error(t, err)
	require.ErrorIs(t, err, mock.PullErr)
	require.Contains(t, err.Error(), "pull failed, not pushing")

	require.False(t, mock.Called("Push"))
	require.False(t, mock.Called("Commit"))
	require.False(t, mock.Called("StageAll"))
}

func TestUpdateNothingToPush(t *testing.T) {
	rt, mock := newTestContext(t)
	configureMapping(t, rt)
	mock.PullOldRev = "abc123"
	mock.PullNewRev = "def456"

	err := Update(context.Background(), rt, PushOptions{AssumeYes: true})
	require.NoError(t, err)
	require.True(t, mock.Called("Pull"))
	require.False(t, mock.Called("Push"))
}
