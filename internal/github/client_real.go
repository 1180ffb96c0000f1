package github

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	oberrors "obsidianite.dev/obsidianite/internal/errors"
)

// RealClient implements Client using the real GitHub API
type RealClient struct {
	client *github.Client
	login  string
}

// NewRealClient creates a GitHub client authenticated with token.
func NewRealClient(ctx context.Context, token string) *RealClient {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return &RealClient{client: github.NewClient(tc)}
}

// NewAnonymousClient creates an unauthenticated GitHub client, enough
// for public release lookups.
func NewAnonymousClient() *RealClient {
	return &RealClient{client: github.NewClient(nil)}
}

// AuthenticatedLogin returns the login of the token's user
func (c *RealClient) AuthenticatedLogin(ctx context.Context) (string, error) {
	if c.login != "" {
		return c.login, nil
	}

	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("GitHub authentication failed: %w", err)
	}
	if user.Login == nil {
		return "", fmt.Errorf("GitHub returned a user without a login")
	}
	c.login = *user.Login
	return c.login, nil
}

// GetRepo looks up a repository under the authenticated user
func (c *RealClient) GetRepo(ctx context.Context, name string) (*RepoInfo, error) {
	login, err := c.AuthenticatedLogin(ctx)
	if err != nil {
		return nil, err
	}

	repo, resp, err := c.client.Repositories.Get(ctx, login, name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, oberrors.NewRepoNotFoundError(name)
		}
		return nil, fmt.Errorf("failed to look up repository %s: %w", name, err)
	}
	return toRepoInfo(repo), nil
}

// CreatePrivateRepo creates a private repository under the authenticated user
func (c *RealClient) CreatePrivateRepo(ctx context.Context, name string) (*RepoInfo, error) {
	repo, _, err := c.client.Repositories.Create(ctx, "", &github.Repository{
		Name:     github.String(name),
		Private:  github.Bool(true),
		AutoInit: github.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create repository %s: %w", name, err)
	}
	return toRepoInfo(repo), nil
}

var releaseVersionPattern = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)`)

// LatestReleaseVersion returns the latest published release version
func (c *RealClient) LatestReleaseVersion(ctx context.Context, owner, repo string) (string, error) {
	release, _, err := c.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}
	if release.TagName == nil {
		return "", fmt.Errorf("latest release has no tag")
	}

	tag := *release.TagName
	if m := releaseVersionPattern.FindStringSubmatch(tag); m != nil {
		return m[1], nil
	}
	return strings.TrimPrefix(tag, "v"), nil
}

// toRepoInfo converts a github.Repository to RepoInfo
func toRepoInfo(repo *github.Repository) *RepoInfo {
	if repo == nil {
		return nil
	}

	info := &RepoInfo{}
	if repo.Name != nil {
		info.Name = *repo.Name
	}
	if repo.FullName != nil {
		info.FullName = *repo.FullName
	}
	if repo.Private != nil {
		info.Private = *repo.Private
	}
	if repo.HTMLURL != nil {
		info.HTMLURL = *repo.HTMLURL
	}
	return info
}
