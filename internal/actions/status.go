package actions

import (
	"context"
	"fmt"

	"obsidianite.dev/obsidianite/internal/git"
	"obsidianite.dev/obsidianite/internal/runtime"
	"obsidianite.dev/obsidianite/internal/tui"
)

// Status shows the vault mapping and a summary of local changes.
func Status(ctx context.Context, rt *runtime.Context) error {
	runner, mapping, err := rt.VaultRunner()
	if err != nil {
		return err
	}

	info := fmt.Sprintf("Vault:      %s\nRepository: %s\nRemote:     %s",
		mapping.VaultPath, mapping.RepoFullName, mapping.RemoteURL)
	rt.Splog.Page(tui.Panel("Vault status", info) + "\n")

	root, err := git.RepoRoot(mapping.VaultPath)
	if err != nil {
		rt.Splog.Warn("Vault at %s is not a git repository anymore; run 'obsidianite init' again", mapping.VaultPath)
		return nil
	}
	if root != mapping.VaultPath {
		rt.Splog.Warn("Vault is nested inside another repository rooted at %s", root)
	}

	changes, err := runner.ChangedFiles(ctx)
	if err != nil {
		return err
	}
	if changes.Empty() {
		rt.Splog.Success("Working tree clean, nothing to push")
		return nil
	}

	rt.Splog.Page(tui.ChangeTable(fmt.Sprintf("%d local change(s)", changes.Total()), changes) + "\n")
	return nil
}
