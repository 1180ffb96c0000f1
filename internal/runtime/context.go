// Package runtime provides a context type that holds the logger, the
// config store and the delegated git/GitHub clients for use throughout
// the application. This avoids passing multiple parameters.
package runtime

import (
	"context"

	"obsidianite.dev/obsidianite/internal/config"
	"obsidianite.dev/obsidianite/internal/git"
	"obsidianite.dev/obsidianite/internal/github"
	"obsidianite.dev/obsidianite/internal/tui"
)

// Context provides access to the config store, logger and external
// delegates for commands.
type Context struct {
	Splog *tui.Splog
	Store *config.Store

	// Git is the runner for the configured vault. Commands that run
	// before init (or tests) may set it directly; otherwise it is
	// created lazily from the stored mapping.
	Git git.Runner

	// NewGitHubClient builds a GitHub client from a token. Tests swap in
	// a factory returning a mock.
	NewGitHubClient func(ctx context.Context, token string) github.Client
}

// New creates a context backed by the real config store, file-logging
// splog and real GitHub client factory.
func New() (*Context, error) {
	store, err := config.NewStore()
	if err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath())
	if err != nil {
		// File logging is best effort; fall back to console only
		splog = tui.NewSplog()
	}

	return &Context{
		Splog: splog,
		Store: store,
		NewGitHubClient: func(ctx context.Context, token string) github.Client {
			return github.NewRealClient(ctx, token)
		},
	}, nil
}

// VaultRunner returns the git runner for the configured vault along with
// the stored mapping. Fails with ErrNotConfigured before init has run.
func (c *Context) VaultRunner() (git.Runner, *config.Mapping, error) {
	mapping, err := c.Store.Mapping()
	if err != nil {
		return nil, nil, err
	}
	if c.Git == nil {
		c.Git = git.NewRunner(mapping.VaultPath)
	}
	return c.Git, mapping, nil
}

// GitHubClient returns an authenticated GitHub client and the token it
// uses. Fails with ErrNoToken when no token is stored.
func (c *Context) GitHubClient(ctx context.Context) (github.Client, string, error) {
	token, err := c.Store.Token()
	if err != nil {
		return nil, "", err
	}
	return c.NewGitHubClient(ctx, token), token, nil
}
