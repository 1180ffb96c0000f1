// Package actions implements the obsidianite operations as thin
// sequences of git and GitHub API delegations.
package actions

import (
	"context"
	"fmt"

	"obsidianite.dev/obsidianite/internal/config"
	"obsidianite.dev/obsidianite/internal/git"
	"obsidianite.dev/obsidianite/internal/github"
	"obsidianite.dev/obsidianite/internal/runtime"
)

// InitOptions are the resolved inputs for Init. Prompting for missing
// values happens at the CLI layer.
type InitOptions struct {
	VaultPath   string
	RepoName    string
	Token       string // empty means use the stored token
	UseExisting bool   // connect to an existing repository only, never create
}

// Init connects a local vault to a private GitHub repository: it creates
// the vault directory if absent, stores the token, gets or creates the
// repository, initializes git with a tokenized HTTPS remote, writes the
// default ignore rules, makes the initial commit when needed and pushes
// main upstream. The mapping is persisted last, once the vault is live.
func Init(ctx context.Context, rt *runtime.Context, opts InitOptions) error {
	vaultPath, err := git.EnsureDir(opts.VaultPath)
	if err != nil {
		return err
	}

	if opts.Token != "" {
		if err := rt.Store.SetToken(opts.Token); err != nil {
			return err
		}
		rt.Splog.Info("Token stored in %s", rt.Store.SecretPath())
	} else {
		if _, err := rt.Store.Token(); err != nil {
			return err
		}
		rt.Splog.Info("Using existing GitHub token")
	}

	repoName, err := config.ValidateRepoName(opts.RepoName)
	if err != nil {
		return err
	}

	client, token, err := rt.GitHubClient(ctx)
	if err != nil {
		return err
	}

	if opts.UseExisting {
		rt.Splog.Info("Checking repository: %s", repoName)
	} else {
		rt.Splog.Info("Using repository: %s", repoName)
	}

	fullName, err := github.GetOrCreatePrivateRepo(ctx, client, repoName, !opts.UseExisting)
	if err != nil {
		return err
	}

	remoteURL := github.BuildRemoteURL(token, fullName)

	runner := rt.Git
	if runner == nil {
		runner = git.NewRunner(vaultPath)
		rt.Git = runner
	}

	if _, err := runner.EnsureIgnoreFile(); err != nil {
		return err
	}
	if err := runner.Init(ctx); err != nil {
		return err
	}
	if err := runner.SetRemote(ctx, remoteURL); err != nil {
		return err
	}

	// A fresh or dirty vault needs a first commit before main can exist
	dirty, err := runner.HasChanges(ctx)
	if err != nil {
		return err
	}
	if dirty || !runner.HasCommits() {
		if err := runner.StageAll(ctx); err != nil {
			return err
		}
		if err := runner.Commit(ctx, "Initial commit by Obsidianite"); err != nil {
			return err
		}
	}

	if err := runner.RenameBranchMain(ctx); err != nil {
		return err
	}
	if err := runner.PushUpstream(ctx); err != nil {
		return err
	}

	if err := rt.Store.SetMapping(config.Mapping{
		VaultPath:    vaultPath,
		RepoFullName: fullName,
		RemoteURL:    github.RedactURL(remoteURL),
	}); err != nil {
		return err
	}

	action := "Initialized"
	if opts.UseExisting {
		action = "Connected to"
	}
	rt.Splog.Success(fmt.Sprintf("Vault %s at %s → %s", action, vaultPath, fullName))
	return nil
}
