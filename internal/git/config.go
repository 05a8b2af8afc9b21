package git

import (
	"context"
	"fmt"
)

// SetUserIdentity sets user.name and user.email, either in the repository
// config or globally in ~/.gitconfig
func (r *Repo) SetUserIdentity(ctx context.Context, name, email string, global bool) error {
	scope := "--local"
	if global {
		scope = "--global"
	}

	if _, err := r.runner.Run(ctx, "config", scope, "user.name", name); err != nil {
		return fmt.Errorf("failed to set user.name: %w", err)
	}
	if _, err := r.runner.Run(ctx, "config", scope, "user.email", email); err != nil {
		return fmt.Errorf("failed to set user.email: %w", err)
	}
	return nil
}
