package git

import (
	"context"
	"fmt"
)

// BranchExists reports whether a local branch exists
func (r *Repo) BranchExists(name string) bool {
	_, err := r.runner.Run(context.Background(), "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	return err == nil
}

// CreateAndCheckoutBranch creates a branch at HEAD and checks it out
func (r *Repo) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.runner.Run(ctx, "checkout", "-b", branchName)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutBranch checks out an existing branch
func (r *Repo) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.runner.Run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateBranchAt creates a branch pointing at the given revision and
// checks it out, forcing the working tree to match. Used to initialize an
// unborn branch from a fetched remote tip.
func (r *Repo) CreateBranchAt(ctx context.Context, branchName, revision string) error {
	_, err := r.runner.Run(ctx, "checkout", "-B", branchName, revision)
	if err != nil {
		return fmt.Errorf("failed to create branch %s at %s: %w", branchName, revision, err)
	}
	return nil
}

// DeleteBranch deletes a local branch
func (r *Repo) DeleteBranch(ctx context.Context, branchName string) error {
	_, err := r.runner.Run(ctx, "branch", "-D", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// SetUpstream links a local branch to a remote branch. Idempotent:
// re-running with the same arguments is a no-op.
func (r *Repo) SetUpstream(ctx context.Context, branchName, remote, remoteBranch string) error {
	_, err := r.runner.Run(ctx, "branch", "--set-upstream-to", fmt.Sprintf("%s/%s", remote, remoteBranch), branchName)
	if err != nil {
		return fmt.Errorf("failed to set upstream for %s: %w", branchName, err)
	}
	return nil
}

// Upstream returns the upstream (remote/branch) of a local branch, and
// whether one is configured
func (r *Repo) Upstream(branchName string) (string, bool) {
	upstream, err := r.runner.Run(context.Background(), "rev-parse", "--abbrev-ref", "--symbolic-full-name", branchName+"@{upstream}")
	if err != nil || upstream == "" {
		return "", false
	}
	return upstream, true
}
