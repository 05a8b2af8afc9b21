package git

import (
	"context"
	"fmt"
)

// Commit records the staged changes with the given message
func (r *Repo) Commit(ctx context.Context, message string) error {
	_, err := r.runner.Run(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// HeadSHA returns the commit hash HEAD points at
func (r *Repo) HeadSHA(ctx context.Context) (string, error) {
	sha, err := r.runner.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return sha, nil
}
