package testhelpers

import (
	"path/filepath"
	"testing"

	"obsidianite.dev/obsidianite/internal/config"
)

// Scene is a test environment with an isolated vault repository, a bare
// on-disk "remote" wired up as origin, and a private config directory.
type Scene struct {
	Dir        string
	VaultDir   string
	ConfigDir  string
	RemotePath string
	Repo       *GitRepo
}

// NewScene creates a scene rooted in a temp directory. The config
// directory override is installed via t.Setenv, so scenes must not be
// used with t.Parallel.
func NewScene(t *testing.T) *Scene {
	t.Helper()

	dir := t.TempDir()
	scene := &Scene{
		Dir:        dir,
		VaultDir:   filepath.Join(dir, "vault"),
		ConfigDir:  filepath.Join(dir, "config"),
		RemotePath: filepath.Join(dir, "remote.git"),
	}

	t.Setenv(config.EnvConfigDir, scene.ConfigDir)

	repo, err := NewGitRepo(scene.VaultDir)
	if err != nil {
		t.Fatalf("failed to create vault repo: %v", err)
	}
	scene.Repo = repo

	if err := NewBareRepo(scene.RemotePath); err != nil {
		t.Fatalf("failed to create remote repo: %v", err)
	}
	if err := repo.RunGitCommand("remote", "add", "origin", scene.RemotePath); err != nil {
		t.Fatalf("failed to add origin remote: %v", err)
	}

	return scene
}

// CloneRemote clones the scene's remote into a sibling directory,
// simulating the vault on a second machine.
func (s *Scene) CloneRemote(t *testing.T, name string) *GitRepo {
	t.Helper()

	repo, err := NewClonedRepo(filepath.Join(s.Dir, name), s.RemotePath)
	if err != nil {
		t.Fatalf("failed to clone remote: %v", err)
	}
	return repo
}
