package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"obsidianite.dev/obsidianite/internal/github"
	"obsidianite.dev/obsidianite/internal/runtime"
	"obsidianite.dev/obsidianite/internal/tui"
)

// releaseRepo is where obsidianite releases are published.
const (
	releaseOwner = "obsidianite"
	releaseRepo  = "obsidianite"
)

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:          "version",
		Short:        "Show the obsidianite version",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Print(tui.Banner(version))
			cmd.Printf("obsidianite %s (commit %s, built %s)\n", version, commit, date)

			if !check {
				return nil
			}

			rt, err := runtime.New()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			// Release lookup needs no auth; use the stored token when
			// present to avoid rate limits.
			var client github.Client
			if c, _, err := rt.GitHubClient(cmd.Context()); err == nil {
				client = c
			} else {
				client = github.NewAnonymousClient()
			}

			latest, err := client.LatestReleaseVersion(cmd.Context(), releaseOwner, releaseRepo)
			if err != nil {
				return err
			}

			if latest == strings.TrimPrefix(version, "v") {
				rt.Splog.Info("You are already running the latest version.")
			} else {
				rt.Splog.Info("New version available: %s (current %s)", latest, version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")

	return cmd
}
