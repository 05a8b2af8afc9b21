package actions

import (
	"context"

	"grit.dev/grit/internal/reconcile"
	"grit.dev/grit/internal/runtime"
)

// LinkOptions contains options for the remote command
type LinkOptions struct {
	// URL is the remote URL to link
	URL string
	// Name is the remote name, usually origin
	Name string
}

// Link sets or updates the remote URL and reconciles the local history
// with whatever the remote already holds, including the unrelated-history
// case that git refuses to handle without an explicit override.
func Link(ctx context.Context, rctx *runtime.Context, opts LinkOptions) error {
	gw := rctx.Gateway
	splog := rctx.Splog

	if err := EnsureClean(ctx, gw); err != nil {
		return err
	}

	if err := gw.SetRemoteURL(ctx, opts.Name, opts.URL); err != nil {
		return err
	}
	splog.Section("Remote %q set to %s", opts.Name, opts.URL)

	splog.Section("Syncing with remote")
	outcome, err := reconcile.New(gw, splog).Reconcile(ctx, opts.Name)
	if err != nil {
		return err
	}

	splog.Info("Result: %s", outcome)
	return nil
}
