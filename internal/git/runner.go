package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	griterrors "grit.dev/grit/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner rooted at workingDir
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command and returns the raw output (no trimming)
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

// RunLines executes a git command and returns its output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// runInternal is the internal implementation that handles trimming
func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", griterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", griterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}
