package cli

import (
	"github.com/spf13/cobra"

	"obsidianite.dev/obsidianite/internal/actions"
	"obsidianite.dev/obsidianite/internal/runtime"
)

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "pull",
		Short:        "Pull and show the latest changes from GitHub",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := runtime.New()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			return actions.Pull(cmd.Context(), rt)
		},
	}
}
