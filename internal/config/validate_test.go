package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"classic PAT", testToken, false},
		{"classic PAT with whitespace", "  " + testToken + "\n", false},
		{"fine-grained PAT", "github_pat_" + strings.Repeat("a", 82), false},
		{"oauth token", "gho_" + strings.Repeat("b", 36), false},
		{"server token", "ghs_" + strings.Repeat("c", 36), false},
		{"empty", "", true},
		{"wrong prefix", "gxp_" + strings.Repeat("a", 36), true},
		{"too short", "ghp_abc", true},
		{"too long", "ghp_" + strings.Repeat("a", 40), true},
		{"random string", "hunter2", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateToken(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, strings.TrimSpace(tt.token), got)
		})
	}
}

func TestValidateRepoName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		repo    string
		wantErr bool
	}{
		{"simple", "notes", false},
		{"with separators", "my-vault_2.0", false},
		{"trimmed", "  notes  ", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 101), true},
		{"leading dash", "-notes", true},
		{"spaces inside", "my vault", true},
		{"git suffix", "notes.git", true},
		{"dot dot", "a..b", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateRepoName(tt.repo)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, strings.TrimSpace(tt.repo), got)
		})
	}
}

func TestDefaultRepoName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "My-Vault", DefaultRepoName("My Vault"))
	require.Equal(t, "notes", DefaultRepoName("  notes "))
}
