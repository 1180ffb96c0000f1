package actions

import (
	"context"

	"obsidianite.dev/obsidianite/internal/runtime"
	"obsidianite.dev/obsidianite/internal/tui"
)

// Pull fetches and integrates the latest vault changes from GitHub and
// shows a summary of what came in.
func Pull(ctx context.Context, rt *runtime.Context) error {
	runner, _, err := rt.VaultRunner()
	if err != nil {
		return err
	}

	oldRev, newRev, err := runner.Pull(ctx)
	if err != nil {
		return err
	}

	if oldRev == newRev {
		rt.Splog.Info("Already up to date.")
		return nil
	}

	changes, err := runner.DiffSummary(ctx, oldRev, newRev)
	if err != nil {
		return err
	}
	if !changes.Empty() {
		rt.Splog.Page(tui.ChangeTable("Changes pulled from GitHub", changes) + "\n")
	}

	rt.Splog.Success("Successfully pulled changes from GitHub")
	return nil
}
