package cli

import (
	"github.com/spf13/cobra"

	"obsidianite.dev/obsidianite/internal/actions"
	"obsidianite.dev/obsidianite/internal/git"
	"obsidianite.dev/obsidianite/internal/runtime"
	"obsidianite.dev/obsidianite/internal/tui"
)

// pushOptionsFromFlags builds PushOptions shared by push and update.
func pushOptionsFromFlags(message string, assumeYes bool) actions.PushOptions {
	opts := actions.PushOptions{
		Message:   message,
		AssumeYes: assumeYes,
	}
	if !assumeYes && tui.IsInteractive() {
		opts.Confirm = func(_ *git.ChangeSet) (bool, error) {
			return tui.Confirm("Do you want to commit and push these changes?", true)
		}
	}
	return opts
}

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var (
		message   string
		assumeYes bool
	)

	cmd := &cobra.Command{
		Use:          "push",
		Short:        "Preview, commit and push all local changes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := runtime.New()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			return actions.Push(cmd.Context(), rt, pushOptionsFromFlags(message, assumeYes))
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
