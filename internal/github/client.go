// Package github provides a client for the GitHub API operations
// obsidianite delegates: private repository lookup/creation and release
// version lookup.
package github

import (
	"context"
	"errors"

	oberrors "obsidianite.dev/obsidianite/internal/errors"
)

// RepoInfo describes a remote repository.
// This is a simplified struct to avoid coupling to the go-github library.
type RepoInfo struct {
	Name     string
	FullName string
	Private  bool
	HTMLURL  string
}

// Client is an interface for GitHub API interactions
type Client interface {
	// AuthenticatedLogin returns the login of the token's user,
	// validating the token in the process.
	AuthenticatedLogin(ctx context.Context) (string, error)

	// GetRepo looks up a repository under the authenticated user.
	// Returns ErrRepoNotFound when it does not exist.
	GetRepo(ctx context.Context, name string) (*RepoInfo, error)

	// CreatePrivateRepo creates a private repository under the
	// authenticated user.
	CreatePrivateRepo(ctx context.Context, name string) (*RepoInfo, error)

	// LatestReleaseVersion returns the latest published release version
	// of the given repository, without a leading "v".
	LatestReleaseVersion(ctx context.Context, owner, repo string) (string, error)
}

// GetOrCreatePrivateRepo returns the full name of the private repository
// for name, creating it when missing and allowed. With createIfMissing
// false a missing repository is an error, mirroring --use-existing.
func GetOrCreatePrivateRepo(ctx context.Context, client Client, name string, createIfMissing bool) (string, error) {
	repo, err := client.GetRepo(ctx, name)
	if err == nil {
		return repo.FullName, nil
	}
	if !errors.Is(err, oberrors.ErrRepoNotFound) {
		return "", err
	}
	if !createIfMissing {
		return "", oberrors.NewRepoNotFoundError(name)
	}

	created, err := client.CreatePrivateRepo(ctx, name)
	if err != nil {
		return "", err
	}
	return created.FullName, nil
}
