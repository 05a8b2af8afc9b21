package git

import (
	"context"
	"fmt"

	griterrors "grit.dev/grit/internal/errors"
)

// PullResult represents the result of a pull operation
type PullResult int

const (
	// PullDone indicates the branch was advanced
	PullDone PullResult = iota
	// PullUnneeded indicates there was nothing to pull
	PullUnneeded
)

// Pull fetches a branch from the remote and fast-forwards the current
// branch to it. A pull that would require a merge commit fails with
// ErrNonFastForward rather than merging; the operator resolves that
// manually.
func (r *Repo) Pull(ctx context.Context, remote, branchName string) (PullResult, error) {
	if !r.RemoteExists(remote) {
		return PullUnneeded, nil
	}

	if err := r.Fetch(ctx, remote); err != nil {
		return PullUnneeded, err
	}

	remoteSHA, exists, err := r.RemoteBranchSHA(remote, branchName)
	if err != nil {
		return PullUnneeded, err
	}
	if !exists {
		// Nothing on the remote for this branch yet.
		return PullUnneeded, nil
	}

	localSHA, err := r.HeadSHA(ctx)
	if err != nil {
		return PullUnneeded, err
	}
	if localSHA == remoteSHA {
		return PullUnneeded, nil
	}

	// Up to date already when the remote is behind us.
	behind, err := r.IsAncestor("refs/remotes/"+remote+"/"+branchName, "HEAD")
	if err != nil {
		return PullUnneeded, err
	}
	if behind {
		return PullUnneeded, nil
	}

	if err := r.FastForwardTo(ctx, fmt.Sprintf("%s/%s", remote, branchName)); err != nil {
		return PullUnneeded, fmt.Errorf("%w: merge manually to resolve", griterrors.ErrNonFastForward)
	}

	return PullDone, nil
}
