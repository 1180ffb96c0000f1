package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"obsidianite.dev/obsidianite/internal/runtime"
	"obsidianite.dev/obsidianite/internal/tui"
)

// newTokenCmd creates the token command, which stores or replaces the
// GitHub Personal Access Token.
func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "token",
		Short:        "Store or replace the GitHub Personal Access Token",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			rt, err := runtime.New()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			if !tui.IsInteractive() {
				return fmt.Errorf("token can only be entered interactively")
			}

			token, err := tui.PromptSecret("Enter your GitHub Personal Access Token")
			if err != nil {
				return err
			}
			if err := rt.Store.SetToken(token); err != nil {
				return err
			}

			rt.Splog.Success("Token stored in %s", rt.Store.SecretPath())
			return nil
		},
	}
}
