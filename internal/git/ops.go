package git

import (
	"context"
	"fmt"
	"strings"
)

// Init initializes a repository in dir with main as the default branch.
// Running it on an existing repository is a no-op.
func Init(ctx context.Context, dir string) error {
	if IsRepository(dir) {
		return nil
	}
	_, err := RunGitCommandInDir(ctx, dir, "init", "-b", "main")
	if err != nil {
		// Older git versions don't support init -b
		_, err = RunGitCommandInDir(ctx, dir, "init")
	}
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}

// RenameBranchMain forces the current branch to be named main.
func RenameBranchMain(ctx context.Context, dir string) error {
	_, err := RunGitCommandInDir(ctx, dir, "branch", "-M", "main")
	if err != nil {
		return fmt.Errorf("failed to rename branch to main: %w", err)
	}
	return nil
}

// SetRemote points the origin remote at url, replacing any existing origin.
func SetRemote(ctx context.Context, dir, url string) error {
	// Remove stale origin first; a missing remote is fine
	_, _ = RunGitCommandInDir(ctx, dir, "remote", "remove", "origin")

	_, err := RunGitCommandInDir(ctx, dir, "remote", "add", "origin", url)
	if err != nil {
		return fmt.Errorf("failed to add origin remote: %w", err)
	}
	return nil
}

// StageAll stages all changes including untracked files
func StageAll(ctx context.Context, dir string) error {
	_, err := RunGitCommandInDir(ctx, dir, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasChanges reports whether the working tree or index has anything to commit,
// including untracked files.
func HasChanges(ctx context.Context, dir string) (bool, error) {
	output, err := RunGitCommandInDir(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check working tree: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// Commit creates a commit with the given message.
func Commit(ctx context.Context, dir, message string) error {
	_, err := RunGitCommandInDir(ctx, dir, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Push pushes the current HEAD to origin's main branch.
func Push(ctx context.Context, dir string) error {
	_, err := RunGitCommandInDir(ctx, dir, "push", "origin", "HEAD:main")
	if err != nil {
		return fmt.Errorf("failed to push to origin: %w", err)
	}
	return nil
}

// PushUpstream pushes main to origin and sets the upstream tracking ref.
// Falls back to pushing HEAD:main first when the local branch ref does not
// resolve yet (fresh repository whose first commit landed on another name).
func PushUpstream(ctx context.Context, dir string) error {
	_, err := RunGitCommandInDir(ctx, dir, "push", "-u", "origin", "main")
	if err == nil {
		return nil
	}
	if _, err := RunGitCommandInDir(ctx, dir, "push", "origin", "HEAD:main"); err != nil {
		return fmt.Errorf("failed to push initial commit: %w", err)
	}
	if _, err := RunGitCommandInDir(ctx, dir, "push", "-u", "origin", "main"); err != nil {
		return fmt.Errorf("failed to set upstream: %w", err)
	}
	return nil
}

// HeadRevision returns the SHA of HEAD.
func HeadRevision(ctx context.Context, dir string) (string, error) {
	rev, err := RunGitCommandInDir(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return rev, nil
}

// Pull pulls origin/main, preferring a rebase pull and falling back to a
// plain merge pull. Returns the HEAD revisions before and after; identical
// revisions mean the vault was already up to date.
func Pull(ctx context.Context, dir string) (oldRev, newRev string, err error) {
	oldRev, err = HeadRevision(ctx, dir)
	if err != nil {
		return "", "", err
	}

	if _, rebaseErr := RunGitCommandInDir(ctx, dir, "pull", "--rebase", "origin", "main"); rebaseErr != nil {
		if _, mergeErr := RunGitCommandInDir(ctx, dir, "pull", "origin", "main"); mergeErr != nil {
			return "", "", fmt.Errorf("pull failed: %w", mergeErr)
		}
	}

	newRev, err = HeadRevision(ctx, dir)
	if err != nil {
		return "", "", err
	}
	return oldRev, newRev, nil
}
