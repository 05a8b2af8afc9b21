package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	griterrors "grit.dev/grit/internal/errors"
)

// RebaseOnto replays the current branch's commits onto the given ref.
// Works for both diverged and unrelated histories: git replays every
// commit reachable from HEAD but not from the ref.
//
// A conflicting hunk aborts the in-progress rebase so the repository is
// left exactly as it was, and the returned RebaseConflictError names the
// first conflicted path.
func (r *Repo) RebaseOnto(ctx context.Context, ref string) error {
	_, err := r.runner.Run(ctx, "rebase", ref)
	if err == nil {
		return nil
	}

	if r.isRebaseInProgress(ctx) {
		path := r.firstConflictedPath(ctx)
		if _, abortErr := r.runner.Run(ctx, "rebase", "--abort"); abortErr != nil {
			return fmt.Errorf("rebase conflict and abort failed, repository needs manual attention: %w", abortErr)
		}
		return griterrors.NewRebaseConflictError(path, "")
	}

	return fmt.Errorf("rebase onto %s failed: %w", ref, err)
}

// FastForwardTo advances the current branch to the given ref without
// creating a commit
func (r *Repo) FastForwardTo(ctx context.Context, ref string) error {
	_, err := r.runner.Run(ctx, "merge", "--ff-only", ref)
	if err != nil {
		return fmt.Errorf("%w: cannot fast-forward to %s", griterrors.ErrNonFastForward, ref)
	}
	return nil
}

// isRebaseInProgress checks for the rebase state directories, which is
// more reliable than REBASE_HEAD (it can persist after a finished rebase)
func (r *Repo) isRebaseInProgress(ctx context.Context) bool {
	gitDir, err := r.runner.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return false
	}
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-merge")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-apply")); err == nil {
		return true
	}
	return false
}

// firstConflictedPath returns the first unmerged path of an in-progress
// rebase, or "" if none can be determined
func (r *Repo) firstConflictedPath(ctx context.Context) string {
	lines, err := r.runner.RunLines(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil || len(lines) == 0 {
		return ""
	}
	return lines[0]
}
