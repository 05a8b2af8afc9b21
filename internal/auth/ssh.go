package auth

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// AgentProvider resolves SSH credentials from a running SSH agent
type AgentProvider struct{}

// Resolve implements Provider
func (p *AgentProvider) Resolve(remoteURL string) (transport.AuthMethod, error) {
	ep, err := endpointFor(remoteURL)
	if err != nil {
		return nil, err
	}
	if ep.Protocol != "ssh" {
		return nil, nil
	}

	auth, err := gitssh.NewSSHAgentAuth(sshUser(ep))
	if err != nil {
		// No agent running; let the next provider try.
		return nil, nil
	}
	return auth, nil
}

// defaultKeyNames are the on-disk private keys probed under ~/.ssh,
// in preference order.
var defaultKeyNames = []string{"id_ed25519", "id_rsa", "id_ecdsa"}

// KeyfileProvider resolves SSH credentials from the user's default key files
type KeyfileProvider struct {
	// SSHDir overrides the directory probed for keys. Defaults to ~/.ssh.
	SSHDir string
}

// Resolve implements Provider
func (p *KeyfileProvider) Resolve(remoteURL string) (transport.AuthMethod, error) {
	ep, err := endpointFor(remoteURL)
	if err != nil {
		return nil, err
	}
	if ep.Protocol != "ssh" {
		return nil, nil
	}

	sshDir := p.SSHDir
	if sshDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		sshDir = filepath.Join(home, ".ssh")
	}

	for _, name := range defaultKeyNames {
		keyPath := filepath.Join(sshDir, name)
		if _, err := os.Stat(keyPath); err != nil {
			continue
		}
		auth, err := gitssh.NewPublicKeysFromFile(sshUser(ep), keyPath, "")
		if err != nil {
			// Unreadable or passphrase-protected key; try the next one.
			continue
		}
		return auth, nil
	}

	return nil, nil
}
