package github

import (
	"context"

	oberrors "obsidianite.dev/obsidianite/internal/errors"
)

// MockClient is a Client implementation for tests. Repos seeds the
// repositories that already "exist"; created repositories are recorded.
type MockClient struct {
	Login string
	Repos map[string]*RepoInfo

	Created   []string
	LoginErr  error
	CreateErr error
	Release   string
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) AuthenticatedLogin(_ context.Context) (string, error) {
	if m.LoginErr != nil {
		return "", m.LoginErr
	}
	if m.Login == "" {
		return "octocat", nil
	}
	return m.Login, nil
}

func (m *MockClient) GetRepo(_ context.Context, name string) (*RepoInfo, error) {
	if repo, ok := m.Repos[name]; ok {
		return repo, nil
	}
	return nil, oberrors.NewRepoNotFoundError(name)
}

func (m *MockClient) CreatePrivateRepo(ctx context.Context, name string) (*RepoInfo, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	login, err := m.AuthenticatedLogin(ctx)
	if err != nil {
		return nil, err
	}

	repo := &RepoInfo{
		Name:     name,
		FullName: login + "/" + name,
		Private:  true,
	}
	if m.Repos == nil {
		m.Repos = map[string]*RepoInfo{}
	}
	m.Repos[name] = repo
	m.Created = append(m.Created, name)
	return repo, nil
}

func (m *MockClient) LatestReleaseVersion(_ context.Context, _, _ string) (string, error) {
	if m.Release == "" {
		return "0.0.0", nil
	}
	return m.Release, nil
}
