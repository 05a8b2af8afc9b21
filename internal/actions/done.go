package actions

import (
	"context"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"grit.dev/grit/internal/runtime"
)

// DoneOptions contains options for the done command
type DoneOptions struct {
	// NoClean keeps the finished feature branch instead of deleting it
	NoClean bool
	// Force skips the delete confirmation prompt
	Force bool
}

// Done finishes a feature branch: switch back to the trunk, pull it, and
// delete the finished branch unless asked not to.
func Done(ctx context.Context, rctx *runtime.Context, opts DoneOptions) error {
	gw := rctx.Gateway
	splog := rctx.Splog

	if err := EnsureClean(ctx, gw); err != nil {
		return err
	}

	current, err := gw.CurrentBranch()
	if err != nil {
		return err
	}

	trunk := detectTrunk(rctx)
	if current == trunk {
		splog.Info("Already on %s, nothing to finalize.", trunk)
		return nil
	}

	splog.Section("Switching to %s", trunk)
	if err := gw.CheckoutBranch(ctx, trunk); err != nil {
		return err
	}

	splog.Section("Pulling %s", trunk)
	if _, err := gw.Pull(ctx, rctx.Config.Remote, trunk); err != nil {
		return err
	}

	if opts.NoClean {
		return nil
	}

	if !opts.Force && rctx.Config.ConfirmDelete && isInteractive() {
		confirmed := false
		prompt := &survey.Confirm{
			Message: "Delete branch " + current + "?",
			Default: true,
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil || !confirmed {
			splog.Info("Keeping branch %s.", current)
			return nil
		}
	}

	splog.Section("Deleting branch %s", current)
	return gw.DeleteBranch(ctx, current)
}

// detectTrunk returns the configured trunk, falling back to main then
// master detection
func detectTrunk(rctx *runtime.Context) string {
	if rctx.Config.Trunk != "" {
		return rctx.Config.Trunk
	}
	if rctx.Gateway.BranchExists("main") {
		return "main"
	}
	if rctx.Gateway.BranchExists("master") {
		return "master"
	}
	return "main"
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
