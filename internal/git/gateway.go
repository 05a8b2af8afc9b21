package git

import (
	"context"
)

// Gateway is the repository-access capability consumed by the workflow
// packages. It exists so the core workflows stay pure functions over an
// explicit capability and can run against a fake in tests.
type Gateway interface {
	// Repository state
	Root() string
	CurrentBranch() (string, error)
	HeadIsUnborn() bool
	IsDirty(ctx context.Context) (bool, error)
	HeadSHA(ctx context.Context) (string, error)

	// Staging and commits
	StageAll(ctx context.Context) error
	HasStagedChanges(ctx context.Context) (bool, error)
	StagedDiff(ctx context.Context) ([]FileDiff, error)
	Commit(ctx context.Context, message string) error

	// History queries
	MergeBase(ref1, ref2 string) (string, bool, error)
	IsAncestor(ancestor, descendant string) (bool, error)

	// Remote operations
	Fetch(ctx context.Context, remote string) error
	Pull(ctx context.Context, remote, branchName string) (PullResult, error)
	Push(ctx context.Context, remote, branchName string, setUpstream bool) error
	RemoteExists(name string) bool
	RemoteURL(name string) (string, bool)
	SetRemoteURL(ctx context.Context, name, url string) error
	RemoteBranchSHA(remote, branch string) (string, bool, error)
	HasRemoteBranches(remote string) (bool, error)

	// Branch operations
	BranchExists(name string) bool
	CreateAndCheckoutBranch(ctx context.Context, branchName string) error
	CreateBranchAt(ctx context.Context, branchName, revision string) error
	CheckoutBranch(ctx context.Context, branchName string) error
	DeleteBranch(ctx context.Context, branchName string) error
	SetUpstream(ctx context.Context, branchName, remote, remoteBranch string) error
	Upstream(branchName string) (string, bool)

	// History rewriting
	RebaseOnto(ctx context.Context, ref string) error
	FastForwardTo(ctx context.Context, ref string) error

	// Configuration
	SetUserIdentity(ctx context.Context, name, email string, global bool) error
}

// Compile-time interface check.
var _ Gateway = (*Repo)(nil)
