package git

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"

	griterrors "grit.dev/grit/internal/errors"
)

// Fetch updates the remote-tracking refs for the given remote using the
// refspecs from the remote's configuration. Credentials are resolved
// through the repository's credential provider.
func (r *Repo) Fetch(ctx context.Context, remote string) error {
	repo, err := r.object()
	if err != nil {
		return err
	}

	rem, err := repo.Remote(remote)
	if err != nil {
		return fmt.Errorf("remote %s not found: %w", remote, err)
	}

	urls := rem.Config().URLs
	if len(urls) == 0 {
		return fmt.Errorf("remote %s has no URL", remote)
	}

	method, err := r.creds.Resolve(urls[0])
	if err != nil {
		return err
	}

	err = rem.FetchContext(ctx, &gogit.FetchOptions{
		RemoteName: remote,
		Auth:       method,
		Tags:       gogit.NoTags,
	})
	switch {
	case err == nil, errors.Is(err, gogit.NoErrAlreadyUpToDate):
		return nil
	case errors.Is(err, transport.ErrEmptyRemoteRepository):
		// A remote with no refs has nothing to fetch; callers observe
		// the missing branch through RemoteBranchSHA.
		return nil
	}
	return classifyFetchError(remote, err)
}

// classifyFetchError maps go-git transport failures onto the auth/network
// sentinels
func classifyFetchError(remote string, err error) error {
	switch {
	case errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed):
		return fmt.Errorf("fetch from %s: %w: %v", remote, griterrors.ErrAuthFailed, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || strings.Contains(err.Error(), "connection refused") {
		return fmt.Errorf("fetch from %s: %w: %v", remote, griterrors.ErrNetworkFailure, err)
	}

	return fmt.Errorf("fetch from %s failed: %w", remote, err)
}

// RemoteBranchSHA returns the commit hash of a remote-tracking branch,
// and whether the branch exists at all.
func (r *Repo) RemoteBranchSHA(remote, branch string) (string, bool, error) {
	repo, err := r.object()
	if err != nil {
		return "", false, err
	}

	refName := plumbing.NewRemoteReferenceName(remote, branch)
	ref, err := repo.Reference(refName, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to resolve %s: %w", refName, err)
	}
	return ref.Hash().String(), true, nil
}

// HasRemoteBranches reports whether any remote-tracking branch exists for
// the given remote
func (r *Repo) HasRemoteBranches(remote string) (bool, error) {
	repo, err := r.object()
	if err != nil {
		return false, err
	}

	refs, err := repo.References()
	if err != nil {
		return false, fmt.Errorf("failed to list references: %w", err)
	}

	prefix := "refs/remotes/" + remote + "/"
	found := false
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if strings.HasPrefix(ref.Name().String(), prefix) {
			found = true
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to iterate references: %w", err)
	}
	return found, nil
}
