package config

import (
	"fmt"
	"regexp"
	"strings"
)

// GitHub issues tokens in a handful of fixed formats; anything else is
// almost certainly a paste error.
var tokenFormats = []*regexp.Regexp{
	regexp.MustCompile(`^ghp_[A-Za-z0-9]{36}$`),         // classic PAT
	regexp.MustCompile(`^github_pat_[A-Za-z0-9_]{82}$`), // fine-grained PAT
	regexp.MustCompile(`^gho_[A-Za-z0-9]{36}$`),         // OAuth
	regexp.MustCompile(`^ghs_[A-Za-z0-9]{36}$`),         // server-to-server
}

var repoNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateToken checks that token looks like a GitHub token and returns
// it trimmed.
func ValidateToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("token must be a non-empty string")
	}

	for _, format := range tokenFormats {
		if format.MatchString(token) {
			return token, nil
		}
	}
	return "", fmt.Errorf("invalid GitHub token format; create a Personal Access Token at https://github.com/settings/tokens")
}

// ValidateRepoName checks a repository name against GitHub naming rules.
func ValidateRepoName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return "", fmt.Errorf("repository name must be 1-100 characters")
	}
	if !repoNamePattern.MatchString(name) {
		return "", fmt.Errorf("repository name may only contain alphanumerics, hyphens, underscores and periods, starting with an alphanumeric")
	}
	if strings.HasSuffix(name, ".git") || strings.Contains(name, "..") {
		return "", fmt.Errorf("repository name contains a forbidden pattern")
	}
	return name, nil
}

// DefaultRepoName derives a repository name from a vault directory name.
func DefaultRepoName(vaultDir string) string {
	return strings.ReplaceAll(strings.TrimSpace(vaultDir), " ", "-")
}
