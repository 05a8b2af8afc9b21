package actions

import (
	"context"
	"fmt"

	griterrors "grit.dev/grit/internal/errors"
	"grit.dev/grit/internal/git"
)

// EnsureClean fails with ErrDirtyWorkingTree when uncommitted changes or
// untracked files exist. Called strictly before the first mutating
// gateway call of any workflow that rewrites history or discards work,
// so a dirty tree is never touched.
func EnsureClean(ctx context.Context, gw git.Gateway) error {
	dirty, err := gw.IsDirty(ctx)
	if err != nil {
		return fmt.Errorf("failed to check working tree: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w: save your work or stash your changes before proceeding", griterrors.ErrDirtyWorkingTree)
	}
	return nil
}
