package actions

import (
	"context"

	"grit.dev/grit/internal/runtime"
)

// FeatureOptions contains options for the feature command
type FeatureOptions struct {
	// Name is the feature branch to create or switch to
	Name string
}

// Feature syncs the current branch, creates (or switches to) the feature
// branch, and pushes it upstream with tracking set.
func Feature(ctx context.Context, rctx *runtime.Context, opts FeatureOptions) error {
	gw := rctx.Gateway
	splog := rctx.Splog
	remote := rctx.Config.Remote

	if err := EnsureClean(ctx, gw); err != nil {
		return err
	}

	if branch, err := gw.CurrentBranch(); err == nil && !gw.HeadIsUnborn() {
		splog.Section("Syncing current branch")
		if _, err := gw.Pull(ctx, remote, branch); err != nil {
			return err
		}
	}

	splog.Section("Switching to feature branch: %s", opts.Name)
	if gw.BranchExists(opts.Name) {
		if err := gw.CheckoutBranch(ctx, opts.Name); err != nil {
			return err
		}
	} else {
		if err := gw.CreateAndCheckoutBranch(ctx, opts.Name); err != nil {
			return err
		}
	}

	if gw.RemoteExists(remote) {
		splog.Section("Pushing upstream")
		return gw.Push(ctx, remote, opts.Name, true)
	}
	splog.Warn("No remote %q configured, skipping push.", remote)
	return nil
}
