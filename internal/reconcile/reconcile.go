// Package reconcile implements the history-reconciliation workflow: given
// a freshly linked remote, it fetches, classifies how the two histories
// relate, replays or fast-forwards local work as needed, and establishes
// upstream tracking.
//
// The interesting case is two histories with no common ancestor: git
// refuses to merge those without an explicit override, so operators hit a
// wall right after linking a repository to a pre-populated remote.
// Encoding detection-and-rebase here removes that footgun while keeping
// the safety property that conflicts abort cleanly instead of leaving a
// half-rebased repository.
package reconcile

import (
	"context"
	"fmt"

	"grit.dev/grit/internal/git"
	"grit.dev/grit/internal/output"
)

// Outcome is the terminal result of one reconciliation. Exactly one
// outcome is produced per invocation; failures are reported as errors
// instead.
type Outcome int

const (
	// AlreadyUpToDate means the remote had nothing the local branch lacks
	AlreadyUpToDate Outcome = iota
	// FastForwarded means the local branch was advanced to the remote tip
	FastForwarded
	// RebasedOntoRemote means diverged but related local commits were
	// replayed onto the remote tip
	RebasedOntoRemote
	// RebasedUnrelatedHistories means the two histories shared no common
	// ancestor and local commits were replayed after the remote history
	RebasedUnrelatedHistories
	// InitializedFromRemote means the local branch had no commits and was
	// created at the remote tip
	InitializedFromRemote
	// RemoteEmpty means the remote has no matching branch to reconcile
	// against; tracking is deferred to the first push
	RemoteEmpty
)

// String returns a human-readable description of the outcome
func (o Outcome) String() string {
	switch o {
	case AlreadyUpToDate:
		return "already up to date"
	case FastForwarded:
		return "fast-forwarded to remote"
	case RebasedOntoRemote:
		return "rebased local commits onto remote"
	case RebasedUnrelatedHistories:
		return "rebased local commits onto unrelated remote history"
	case InitializedFromRemote:
		return "initialized local branch from remote"
	case RemoteEmpty:
		return "remote is empty, ready for the first save"
	}
	return "unknown"
}

// historyRelation classifies how local HEAD relates to the remote tip
type historyRelation int

const (
	relationUnrelated historyRelation = iota
	relationUpToDate
	relationFastForwardable
	relationDiverged
)

// Reconciler runs the reconciliation workflow against a repository gateway
type Reconciler struct {
	gw    git.Gateway
	splog *output.Splog
}

// New creates a Reconciler
func New(gw git.Gateway, splog *output.Splog) *Reconciler {
	return &Reconciler{gw: gw, splog: splog}
}

// Reconcile runs the full workflow against the given remote: fetch,
// classify, rebase or fast-forward, set tracking. Any failure aborts the
// workflow with the repository's refs unchanged from before the failing
// step; a conflicted rebase is aborted by the gateway before the error
// reaches here.
func (r *Reconciler) Reconcile(ctx context.Context, remote string) (Outcome, error) {
	branch, err := r.gw.CurrentBranch()
	if err != nil {
		return 0, err
	}

	if err := r.gw.Fetch(ctx, remote); err != nil {
		return 0, err
	}

	remoteSHA, exists, err := r.gw.RemoteBranchSHA(remote, branch)
	if err != nil {
		return 0, err
	}
	if !exists {
		return RemoteEmpty, nil
	}

	remoteRef := fmt.Sprintf("refs/remotes/%s/%s", remote, branch)

	// An unborn local branch has nothing to replay; start it at the
	// remote tip.
	if r.gw.HeadIsUnborn() {
		r.splog.Section("Initializing %s from %s/%s", branch, remote, branch)
		if err := r.gw.CreateBranchAt(ctx, branch, remoteSHA); err != nil {
			return 0, err
		}
		if err := r.gw.SetUpstream(ctx, branch, remote, branch); err != nil {
			return 0, err
		}
		return InitializedFromRemote, nil
	}

	relation, err := r.classify(ctx, remoteRef, remoteSHA)
	if err != nil {
		return 0, err
	}

	var outcome Outcome
	switch relation {
	case relationUpToDate:
		outcome = AlreadyUpToDate
	case relationFastForwardable:
		r.splog.Section("Fast-forwarding %s to %s/%s", branch, remote, branch)
		if err := r.gw.FastForwardTo(ctx, remoteRef); err != nil {
			return 0, err
		}
		outcome = FastForwarded
	case relationUnrelated:
		r.splog.Section("Rebasing local work onto unrelated history at %s/%s", remote, branch)
		if err := r.gw.RebaseOnto(ctx, remoteRef); err != nil {
			return 0, err
		}
		outcome = RebasedUnrelatedHistories
	case relationDiverged:
		r.splog.Section("Rebasing local work onto %s/%s", remote, branch)
		if err := r.gw.RebaseOnto(ctx, remoteRef); err != nil {
			return 0, err
		}
		outcome = RebasedOntoRemote
	}

	// Idempotent: re-linking an already tracked branch is a no-op.
	if err := r.gw.SetUpstream(ctx, branch, remote, branch); err != nil {
		return outcome, err
	}

	return outcome, nil
}

// classify determines how local HEAD relates to the fetched remote tip
func (r *Reconciler) classify(ctx context.Context, remoteRef, remoteSHA string) (historyRelation, error) {
	headSHA, err := r.gw.HeadSHA(ctx)
	if err != nil {
		return relationUnrelated, err
	}
	if headSHA == remoteSHA {
		return relationUpToDate, nil
	}

	_, related, err := r.gw.MergeBase("HEAD", remoteRef)
	if err != nil {
		return relationUnrelated, err
	}
	if !related {
		return relationUnrelated, nil
	}

	remoteIsBehind, err := r.gw.IsAncestor(remoteRef, "HEAD")
	if err != nil {
		return relationUnrelated, err
	}
	if remoteIsBehind {
		return relationUpToDate, nil
	}

	localIsBehind, err := r.gw.IsAncestor("HEAD", remoteRef)
	if err != nil {
		return relationUnrelated, err
	}
	if localIsBehind {
		return relationFastForwardable, nil
	}

	return relationDiverged, nil
}
