package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"grit.dev/grit/internal/auth"
)

// Repo is the gateway to a single git repository. Mutating operations go
// through the git CLI so hooks and configuration behave exactly as they
// would for the operator; read-side history queries go through go-git.
type Repo struct {
	root   string
	runner *CommandRunner
	creds  auth.Provider
}

// Open opens the repository containing path and returns its gateway
func Open(path string) (*Repo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &Repo{
		root:   root,
		runner: NewCommandRunner(root),
		creds:  auth.DefaultChain(),
	}, nil
}

// Root returns the root directory of the repository
func (r *Repo) Root() string {
	return r.root
}

// SetCredentialProvider overrides the credential resolution used for fetch
func (r *Repo) SetCredentialProvider(p auth.Provider) {
	r.creds = p
}

// object returns a fresh go-git handle. Handles are not cached because
// CLI mutations would leave a cached handle stale.
func (r *Repo) object() (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(r.root, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// resolveRefHash resolves a ref name or revision to a commit hash
func resolveRefHash(repo *gogit.Repository, name string) (plumbing.Hash, error) {
	if ref, err := repo.Reference(plumbing.ReferenceName(name), true); err == nil {
		return ref.Hash(), nil
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(name))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	return *hash, nil
}
