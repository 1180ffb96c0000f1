package cli

import (
	"github.com/spf13/cobra"

	"obsidianite.dev/obsidianite/internal/actions"
	"obsidianite.dev/obsidianite/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Short:        "Show the vault mapping and pending local changes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := runtime.New()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			return actions.Status(cmd.Context(), rt)
		},
	}
}
