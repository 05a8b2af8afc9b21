package auth

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

// HelperProvider resolves HTTPS credentials through the system git
// credential helper (git credential fill).
type HelperProvider struct{}

// Resolve implements Provider
func (p *HelperProvider) Resolve(remoteURL string) (transport.AuthMethod, error) {
	ep, err := endpointFor(remoteURL)
	if err != nil {
		return nil, err
	}
	if ep.Protocol != "http" && ep.Protocol != "https" {
		return nil, nil
	}

	input := fmt.Sprintf("protocol=%s\nhost=%s\n\n", ep.Protocol, ep.Host)

	cmd := exec.Command("git", "credential", "fill")
	cmd.Stdin = strings.NewReader(input)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("credential helper failed for %s: %w", ep.Host, err)
	}

	creds := parseCredentialOutput(stdout.String())
	username := creds["username"]
	password := creds["password"]
	if password == "" {
		return nil, fmt.Errorf("credential helper returned no password for %s", ep.Host)
	}

	return &githttp.BasicAuth{Username: username, Password: password}, nil
}

// parseCredentialOutput parses the key=value lines emitted by git credential fill
func parseCredentialOutput(output string) map[string]string {
	creds := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(line, "=")
		if found {
			creds[key] = value
		}
	}
	return creds
}
