package cli

import (
	"github.com/spf13/cobra"

	"obsidianite.dev/obsidianite/internal/actions"
	"obsidianite.dev/obsidianite/internal/runtime"
)

// newUpdateCmd creates the update command
func newUpdateCmd() *cobra.Command {
	var (
		message   string
		assumeYes bool
	)

	cmd := &cobra.Command{
		Use:          "update",
		Short:        "Pull the latest changes, then push local ones",
		Long:         "Update runs pull followed by push. If the pull fails, nothing is pushed.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := runtime.New()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			return actions.Update(cmd.Context(), rt, pushOptionsFromFlags(message, assumeYes))
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
