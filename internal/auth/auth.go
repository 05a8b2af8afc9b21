// Package auth resolves transport credentials for remote URLs.
//
// A Provider turns a remote URL into a usable transport credential. The
// callers never care which underlying method satisfied the request: the
// default chain tries the SSH agent, then on-disk SSH keys, then the
// system credential helper for HTTPS remotes. Local and file remotes
// need no credential at all.
package auth

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/transport"

	griterrors "grit.dev/grit/internal/errors"
)

// Provider produces a usable transport credential for a given remote URL.
// A nil AuthMethod with a nil error means the transport needs no credential.
type Provider interface {
	Resolve(remoteURL string) (transport.AuthMethod, error)
}

// Chain tries each provider in order and returns the first credential found.
type Chain struct {
	providers []Provider
}

// NewChain creates a Chain over the given providers
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// DefaultChain returns the standard resolution order: SSH agent,
// on-disk SSH keys, then credential helper for HTTPS.
func DefaultChain() *Chain {
	return NewChain(
		&AgentProvider{},
		&KeyfileProvider{},
		&HelperProvider{},
	)
}

// Resolve implements Provider. Attempts are bounded by the chain length,
// so a refusing server can never trap the caller in a credential loop.
func (c *Chain) Resolve(remoteURL string) (transport.AuthMethod, error) {
	ep, err := transport.NewEndpoint(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse remote URL %s: %w", remoteURL, err)
	}

	// Local transports are credential-free.
	if ep.Protocol == "file" || ep.Protocol == "" {
		return nil, nil
	}

	var lastErr error
	for _, p := range c.providers {
		method, err := p.Resolve(remoteURL)
		if err != nil {
			lastErr = err
			continue
		}
		if method != nil {
			return method, nil
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", griterrors.ErrAuthFailed, lastErr)
	}
	return nil, fmt.Errorf("%w: no credential source matched %s", griterrors.ErrAuthFailed, remoteURL)
}

// endpointFor parses a remote URL, shared by the providers.
func endpointFor(remoteURL string) (*transport.Endpoint, error) {
	return transport.NewEndpoint(remoteURL)
}

// sshUser returns the username for an SSH endpoint, defaulting to "git"
func sshUser(ep *transport.Endpoint) string {
	if ep.User != "" {
		return ep.User
	}
	return "git"
}
