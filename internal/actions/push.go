package actions

import (
	"context"
	"fmt"
	"time"

	"obsidianite.dev/obsidianite/internal/git"
	"obsidianite.dev/obsidianite/internal/runtime"
	"obsidianite.dev/obsidianite/internal/tui"
)

// PushOptions control the push action.
type PushOptions struct {
	// Message is the commit message; empty means a timestamped default.
	Message string

	// AssumeYes skips the confirmation prompt.
	AssumeYes bool

	// Confirm is invoked with the pending change set before committing.
	// Nil together with AssumeYes=false means confirmation is denied,
	// which keeps non-interactive runs safe.
	Confirm func(cs *git.ChangeSet) (bool, error)
}

// Push previews, commits and pushes all local vault changes.
func Push(ctx context.Context, rt *runtime.Context, opts PushOptions) error {
	runner, _, err := rt.VaultRunner()
	if err != nil {
		return err
	}

	changes, err := runner.ChangedFiles(ctx)
	if err != nil {
		return err
	}
	if changes.Empty() {
		rt.Splog.Warn("No changes to commit.")
		return nil
	}

	rt.Splog.Page(tui.ChangeTable("Changes to be committed", changes) + "\n")

	if !opts.AssumeYes {
		if opts.Confirm == nil {
			return fmt.Errorf("refusing to push without confirmation; pass --yes in non-interactive runs")
		}
		ok, err := opts.Confirm(changes)
		if err != nil {
			return err
		}
		if !ok {
			rt.Splog.Warn("Operation cancelled.")
			return nil
		}
	}

	if err := runner.StageAll(ctx); err != nil {
		return err
	}

	message := opts.Message
	if message == "" {
		message = fmt.Sprintf("obsidianite: update %s", time.Now().Format("2006-01-02T15:04:05"))
	}
	if err := runner.Commit(ctx, message); err != nil {
		return err
	}

	if err := runner.Push(ctx); err != nil {
		return err
	}

	rt.Splog.Success("Changes successfully pushed to GitHub")
	return nil
}
