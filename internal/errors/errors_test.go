package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepoNotFoundErrorIs(t *testing.T) {
	t.Parallel()

	err := NewRepoNotFoundError("notes")
	require.ErrorIs(t, err, ErrRepoNotFound)
	require.Contains(t, err.Error(), "notes")
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("exit status 128")
	err := NewGitCommandError("git", []string{"push", "origin", "main"}, "", "fatal: repository not found", cause)

	msg := err.Error()
	require.Contains(t, msg, "git command failed")
	require.Contains(t, msg, "push")
	require.Contains(t, msg, "fatal: repository not found")
	require.ErrorIs(t, err, cause)
}

func TestRedactKnownTokenFormats(t *testing.T) {
	t.Parallel()

	token := "ghp_" + strings.Repeat("a", 36)
	msg := "failed to push to https://" + token + ":x-oauth-basic@github.com/octocat/notes.git"

	redacted := Redact(msg, "")
	require.NotContains(t, redacted, token)
	require.Contains(t, redacted, "***TOKEN***")
}

func TestRedactExplicitToken(t *testing.T) {
	t.Parallel()

	// A token that matches no known format is still scrubbed when passed in
	redacted := Redact("remote rejected token weird-token-123", "weird-token-123")
	require.NotContains(t, redacted, "weird-token-123")
	require.Contains(t, redacted, "***TOKEN***")
}

func TestRedactError(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", RedactError(nil, ""))

	token := "github_pat_" + strings.Repeat("b", 82)
	err := stderrors.New("auth failed for " + token)
	require.NotContains(t, RedactError(err, ""), token)
}
