package actions

import (
	"context"

	"grit.dev/grit/internal/runtime"
)

// CredsOptions contains options for the creds command
type CredsOptions struct {
	Name  string
	Email string
	// Global writes to ~/.gitconfig instead of the repository config
	Global bool
}

// Creds configures the committer identity
func Creds(ctx context.Context, rctx *runtime.Context, opts CredsOptions) error {
	if err := rctx.Gateway.SetUserIdentity(ctx, opts.Name, opts.Email, opts.Global); err != nil {
		return err
	}

	scope := "locally"
	if opts.Global {
		scope = "globally"
	}
	rctx.Splog.Section("Configured %s as %s <%s>", scope, opts.Name, opts.Email)
	return nil
}
