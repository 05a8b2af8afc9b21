package git

import (
	"context"
	"fmt"

	griterrors "grit.dev/grit/internal/errors"
)

// IsDirty reports whether the working tree has uncommitted changes.
// Untracked files count as dirty because they can collide during branch
// switches and rebases.
func (r *Repo) IsDirty(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}
	return output != "", nil
}

// CurrentBranch returns the name of the branch HEAD points at.
// Works for an unborn branch (no commits yet); fails with ErrNotOnBranch
// for a detached HEAD.
func (r *Repo) CurrentBranch() (string, error) {
	name, err := r.runner.Run(context.Background(), "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil || name == "" {
		return "", griterrors.ErrNotOnBranch
	}
	return name, nil
}

// HeadIsUnborn reports whether HEAD points at a branch with no commits yet
func (r *Repo) HeadIsUnborn() bool {
	_, err := r.runner.Run(context.Background(), "rev-parse", "--verify", "--quiet", "HEAD")
	return err != nil
}
