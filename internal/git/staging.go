package git

import (
	"context"
	"fmt"
)

// StageAll stages all changes including untracked files
func (r *Repo) StageAll(ctx context.Context) error {
	_, err := r.runner.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func (r *Repo) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return output != "", nil
}
