package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"obsidianite.dev/obsidianite/internal/actions"
	"obsidianite.dev/obsidianite/internal/config"
	oberrors "obsidianite.dev/obsidianite/internal/errors"
	"obsidianite.dev/obsidianite/internal/runtime"
	"obsidianite.dev/obsidianite/internal/tui"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var (
		vaultPath     string
		repoName      string
		useExisting   bool
		noInteractive bool
	)

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Initialize a vault and connect it to a private GitHub repository",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := runtime.New()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			interactive := !noInteractive && tui.IsInteractive()

			if vaultPath == "" {
				if !interactive {
					return fmt.Errorf("missing vault path; pass --vault in non-interactive mode")
				}
				vaultPath, err = tui.PromptText("Enter local path of your Obsidian vault", "~/Documents/Vault")
				if err != nil {
					return err
				}
			}

			// Prompt for a token only when none is stored yet
			token := ""
			if _, err := rt.Store.Token(); errors.Is(err, oberrors.ErrNoToken) {
				if !interactive {
					return fmt.Errorf("no GitHub token stored; run 'obsidianite token' first or run init interactively")
				}
				token, err = tui.PromptSecret("Enter your GitHub Personal Access Token")
				if err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			if repoName == "" {
				defaultRepo := config.DefaultRepoName(filepath.Base(vaultPath))
				if interactive {
					repoName, err = tui.PromptText(fmt.Sprintf("Enter GitHub repository name (default %s)", defaultRepo), defaultRepo)
					if err != nil {
						return err
					}
				}
				if repoName == "" {
					repoName = defaultRepo
				}
			}

			return actions.Init(cmd.Context(), rt, actions.InitOptions{
				VaultPath:   vaultPath,
				RepoName:    repoName,
				Token:       token,
				UseExisting: useExisting,
			})
		},
	}

	cmd.Flags().StringVar(&vaultPath, "vault", "", "Path to the local Obsidian vault")
	cmd.Flags().StringVar(&repoName, "repo", "", "GitHub repository name")
	cmd.Flags().BoolVar(&useExisting, "use-existing", false, "Use an existing repository only, don't create a new one")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Disable interactive prompts")

	return cmd
}
