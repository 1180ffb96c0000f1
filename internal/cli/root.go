// Package cli wires the obsidianite commands: flag parsing, prompting
// and presentation. The actual work happens in the actions package.
package cli

import (
	"github.com/spf13/cobra"

	"obsidianite.dev/obsidianite/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "obsidianite",
		Short:         "Sync your Obsidian vault with a private GitHub repo",
		Long:          "Obsidianite keeps a local Obsidian vault backed up in a private GitHub repository.\nAll version control work is delegated to git; repository management to the GitHub API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Print(tui.Banner(version))
			cmd.Println(tui.Panel("OBSIDIANITE", "Manage your Obsidian vault backups"))
			cmd.Println()
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
