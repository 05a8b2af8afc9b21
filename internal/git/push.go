package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	griterrors "grit.dev/grit/internal/errors"
)

// Push pushes a branch to a remote. When setUpstream is true the local
// branch is linked to the remote branch for future parameterless pulls.
func (r *Repo) Push(ctx context.Context, remote, branchName string, setUpstream bool) error {
	if !r.RemoteExists(remote) {
		return nil
	}

	args := []string{"push"}
	if setUpstream {
		args = append(args, "-u")
	}
	args = append(args, remote, branchName)

	_, err := r.runner.Run(ctx, args...)
	if err != nil {
		if classified := classifyTransportError(err); classified != nil {
			return fmt.Errorf("failed to push branch %s: %w", branchName, classified)
		}
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}

// classifyTransportError maps well-known git transport failures onto the
// auth/network sentinels so callers can react with errors.Is. Returns nil
// when the failure is neither.
func classifyTransportError(err error) error {
	var cmdErr *griterrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return nil
	}
	stderr := cmdErr.Stderr

	for _, marker := range []string{
		"Authentication failed",
		"Permission denied",
		"could not read Username",
		"Invalid username or token",
	} {
		if strings.Contains(stderr, marker) {
			return fmt.Errorf("%w: %s", griterrors.ErrAuthFailed, strings.TrimSpace(stderr))
		}
	}

	for _, marker := range []string{
		"Could not resolve host",
		"Connection refused",
		"Connection timed out",
		"Failed to connect",
	} {
		if strings.Contains(stderr, marker) {
			return fmt.Errorf("%w: %s", griterrors.ErrNetworkFailure, strings.TrimSpace(stderr))
		}
	}

	return nil
}
