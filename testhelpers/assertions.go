package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper that panics if err is not nil, otherwise
// returns the value. Useful for test setup code where errors are not
// expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectClean asserts that the repository working tree has no changes.
func ExpectClean(t *testing.T, repo *GitRepo) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("status", "--porcelain")
	require.NoError(t, err, "failed to get status")
	require.Empty(t, output, "expected a clean working tree")
}

// ExpectHeadMessage asserts the subject line of the HEAD commit.
func ExpectHeadMessage(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s")
	require.NoError(t, err, "failed to read HEAD message")
	require.Equal(t, expected, output)
}
