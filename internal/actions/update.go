package actions

import (
	"context"
	"fmt"

	"obsidianite.dev/obsidianite/internal/runtime"
)

// Update synchronizes the vault in both directions: pull, then push.
// If the pull fails the push is not attempted, so local changes are
// never pushed over an unintegrated remote state.
func Update(ctx context.Context, rt *runtime.Context, opts PushOptions) error {
	if err := Pull(ctx, rt); err != nil {
		return fmt.Errorf("pull failed, not pushing: %w", err)
	}
	return Push(ctx, rt, opts)
}
