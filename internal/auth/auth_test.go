package auth_test

import (
	"errors"
	"testing"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/stretchr/testify/require"

	"grit.dev/grit/internal/auth"
	griterrors "grit.dev/grit/internal/errors"
)

// stubProvider returns a fixed method or error, recording that it was asked
type stubProvider struct {
	method transport.AuthMethod
	err    error
	asked  bool
}

func (p *stubProvider) Resolve(string) (transport.AuthMethod, error) {
	p.asked = true
	return p.method, p.err
}

func TestChainResolve(t *testing.T) {
	t.Run("local paths need no credential", func(t *testing.T) {
		stub := &stubProvider{}
		chain := auth.NewChain(stub)

		method, err := chain.Resolve("/var/repos/project.git")
		require.NoError(t, err)
		require.Nil(t, method)
		require.False(t, stub.asked)
	})

	t.Run("file URLs need no credential", func(t *testing.T) {
		chain := auth.NewChain()

		method, err := chain.Resolve("file:///var/repos/project.git")
		require.NoError(t, err)
		require.Nil(t, method)
	})

	t.Run("first provider with a credential wins", func(t *testing.T) {
		first := &stubProvider{}
		second := &stubProvider{method: &mockAuth{name: "second"}}
		third := &stubProvider{method: &mockAuth{name: "third"}}
		chain := auth.NewChain(first, second, third)

		method, err := chain.Resolve("ssh://git@example.com/project.git")
		require.NoError(t, err)
		require.Equal(t, "second", method.(*mockAuth).name)
		require.True(t, first.asked)
		require.False(t, third.asked)
	})

	t.Run("a failing provider does not stop the chain", func(t *testing.T) {
		failing := &stubProvider{err: errors.New("no agent")}
		working := &stubProvider{method: &mockAuth{name: "working"}}
		chain := auth.NewChain(failing, working)

		method, err := chain.Resolve("ssh://git@example.com/project.git")
		require.NoError(t, err)
		require.NotNil(t, method)
	})

	t.Run("exhausted chain fails with auth error", func(t *testing.T) {
		chain := auth.NewChain(&stubProvider{}, &stubProvider{})

		_, err := chain.Resolve("ssh://git@example.com/project.git")
		require.ErrorIs(t, err, griterrors.ErrAuthFailed)
	})
}

// mockAuth is a minimal transport.AuthMethod for chain ordering tests
type mockAuth struct {
	name string
}

func (m *mockAuth) String() string { return m.name }
func (m *mockAuth) Name() string   { return m.name }
