// Package config manages the per-user obsidianite configuration directory:
// the stored GitHub token and the vault-to-repository mapping. Both live
// outside any vault so that secrets never become tracked vault content.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	oberrors "obsidianite.dev/obsidianite/internal/errors"
)

const (
	// EnvConfigDir overrides the config directory location (used by tests).
	EnvConfigDir = "OBSIDIANITE_CONFIG_DIR"

	secretFileName  = ".env"
	mappingFileName = "mapping.env"

	tokenKey     = "GITHUB_TOKEN"
	vaultPathKey = "VAULT_PATH"
	repoNameKey  = "REPO_FULL_NAME"
	remoteURLKey = "REMOTE_URL"
)

// Mapping records the association between a local vault and its remote
// repository. The stored remote URL is credential-free; the token is
// re-applied when the remote is configured.
type Mapping struct {
	VaultPath    string
	RepoFullName string
	RemoteURL    string
}

// Store reads and writes the obsidianite configuration files.
type Store struct {
	dir string
}

// NewStore creates a store rooted at OBSIDIANITE_CONFIG_DIR if set,
// otherwise ~/.obsidianite. The directory is created if missing.
func NewStore() (*Store, error) {
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory: %w", err)
		}
		dir = filepath.Join(home, ".obsidianite")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the config directory path.
func (s *Store) Dir() string {
	return s.dir
}

// SecretPath returns the path of the token file.
func (s *Store) SecretPath() string {
	return filepath.Join(s.dir, secretFileName)
}

// MappingPath returns the path of the mapping file.
func (s *Store) MappingPath() string {
	return filepath.Join(s.dir, mappingFileName)
}

// Token returns the stored GitHub token, or ErrNoToken if none is stored.
func (s *Store) Token() (string, error) {
	f, err := ini.Load(s.SecretPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", oberrors.ErrNoToken
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	token := f.Section("").Key(tokenKey).String()
	if token == "" {
		return "", oberrors.ErrNoToken
	}
	return token, nil
}

// SetToken validates and persists the GitHub token, overwriting any
// previous one. The secret file is owner-readable only.
func (s *Store) SetToken(token string) error {
	token, err := ValidateToken(token)
	if err != nil {
		return err
	}

	f := ini.Empty()
	f.Section("").Key(tokenKey).SetValue(token)
	if err := f.SaveTo(s.SecretPath()); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := os.Chmod(s.SecretPath(), 0600); err != nil {
		return fmt.Errorf("failed to restrict token file permissions: %w", err)
	}
	return nil
}

// Mapping returns the stored vault mapping, or ErrNotConfigured if init
// has not been run.
func (s *Store) Mapping() (*Mapping, error) {
	f, err := ini.Load(s.MappingPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oberrors.ErrNotConfigured
		}
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	sec := f.Section("")
	m := &Mapping{
		VaultPath:    sec.Key(vaultPathKey).String(),
		RepoFullName: sec.Key(repoNameKey).String(),
		RemoteURL:    sec.Key(remoteURLKey).String(),
	}
	if m.VaultPath == "" {
		return nil, oberrors.ErrNotConfigured
	}
	return m, nil
}

// SetMapping persists the vault mapping, overwriting any previous one.
func (s *Store) SetMapping(m Mapping) error {
	f := ini.Empty()
	sec := f.Section("")
	sec.Key(vaultPathKey).SetValue(m.VaultPath)
	sec.Key(repoNameKey).SetValue(m.RepoFullName)
	sec.Key(remoteURLKey).SetValue(m.RemoteURL)
	if err := f.SaveTo(s.MappingPath()); err != nil {
		return fmt.Errorf("failed to write mapping file: %w", err)
	}
	return nil
}
