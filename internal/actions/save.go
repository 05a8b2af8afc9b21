package actions

import (
	"context"
	"fmt"

	"grit.dev/grit/internal/analyze"
	"grit.dev/grit/internal/classify"
	griterrors "grit.dev/grit/internal/errors"
	"grit.dev/grit/internal/message"
	"grit.dev/grit/internal/runtime"
)

// SaveOptions contains options for the save command
type SaveOptions struct {
	// Message overrides the generated commit message
	Message string
	// DryRun previews the message without committing or pushing
	DryRun bool
}

// Save stages everything, synthesizes (or accepts) a commit message,
// commits and pushes. Save is allowed to start from a dirty tree; it
// fails only when there is nothing at all to commit.
//
// A dry run performs the same staging and analysis, so the previewed
// message is byte-identical to what an immediate real save would commit.
func Save(ctx context.Context, rctx *runtime.Context, opts SaveOptions) error {
	gw := rctx.Gateway
	splog := rctx.Splog

	if !opts.DryRun && !gw.HeadIsUnborn() {
		if branch, err := gw.CurrentBranch(); err == nil {
			splog.Section("Pulling latest changes")
			if _, err := gw.Pull(ctx, rctx.Config.Remote, branch); err != nil {
				return err
			}
		}
	}

	splog.Section("Staging and analyzing")
	if err := gw.StageAll(ctx); err != nil {
		return err
	}

	staged, err := gw.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !staged {
		return griterrors.ErrNothingToCommit
	}

	diffs, err := gw.StagedDiff(ctx)
	if err != nil {
		return err
	}

	summary := analyze.Summarize(diffs)
	if summary.IsEmpty() {
		return griterrors.ErrNothingToCommit
	}

	// An operator-supplied message bypasses classification entirely.
	var cls classify.Classification
	if opts.Message == "" {
		cls = classify.Classify(summary)
	}
	msg := message.Compose(cls, summary, opts.Message)

	if opts.DryRun {
		splog.Newline()
		splog.Info("[dry run] Would have committed with message:")
		splog.Info(">> %s", msg.Header)
		splog.Newline()
		for _, record := range summary.Records {
			splog.Dim("  %s %s (+%d, -%d)", record.Kind, record.Path, record.Insertions, record.Deletions)
		}
		splog.Newline()
		splog.Tip("To execute, run without --dry-run.")
		return nil
	}

	splog.Section("Committing: %q", msg.Header)
	if err := gw.Commit(ctx, msg.String()); err != nil {
		return err
	}

	branch, err := gw.CurrentBranch()
	if err != nil {
		return fmt.Errorf("commit created but cannot push: %w", err)
	}

	splog.Section("Pushing")
	_, tracked := gw.Upstream(branch)
	return gw.Push(ctx, rctx.Config.Remote, branch, !tracked)
}
