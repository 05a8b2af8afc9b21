package git

import (
	"context"
	"fmt"
)

// RemoteExists reports whether a remote with the given name is configured
func (r *Repo) RemoteExists(name string) bool {
	_, err := r.runner.Run(context.Background(), "remote", "get-url", name)
	return err == nil
}

// RemoteURL returns the URL of a remote, and whether the remote exists
func (r *Repo) RemoteURL(name string) (string, bool) {
	url, err := r.runner.Run(context.Background(), "remote", "get-url", name)
	if err != nil {
		return "", false
	}
	return url, true
}

// SetRemoteURL adds the remote or updates its URL if it already exists
func (r *Repo) SetRemoteURL(ctx context.Context, name, url string) error {
	if r.RemoteExists(name) {
		if _, err := r.runner.Run(ctx, "remote", "set-url", name, url); err != nil {
			return fmt.Errorf("failed to update remote %s: %w", name, err)
		}
		return nil
	}
	if _, err := r.runner.Run(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}
