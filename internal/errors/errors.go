// Package errors provides sentinel errors and custom error types for the grit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrDirtyWorkingTree indicates that a destructive operation was requested
	// while uncommitted changes or untracked files exist
	ErrDirtyWorkingTree = errors.New("working tree has uncommitted changes")

	// ErrNothingToCommit indicates that save was invoked with no changes to record
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrRebaseConflict indicates that a rebase operation encountered a conflict
	ErrRebaseConflict = errors.New("rebase conflict")

	// ErrAuthFailed indicates that no credential could authenticate a transport
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNetworkFailure indicates that a remote could not be reached
	ErrNetworkFailure = errors.New("network failure")

	// ErrNonFastForward indicates that a pull would require a merge commit
	ErrNonFastForward = errors.New("pull is not fast-forward")
)

// RebaseConflictError represents a rebase that hit a conflicting hunk.
// The rebase is aborted before this error is returned, so the repository
// is back in its pre-rebase state.
type RebaseConflictError struct {
	Path    string
	Message string
}

func (e *RebaseConflictError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("rebase conflict in %s; rebase aborted, resolve manually", e.Path)
	}
	if e.Message != "" {
		return fmt.Sprintf("rebase conflict: %s", e.Message)
	}
	return "rebase conflict; rebase aborted"
}

// Is returns true if the target error is ErrRebaseConflict
func (e *RebaseConflictError) Is(target error) bool {
	return target == ErrRebaseConflict
}

// NewRebaseConflictError creates a new RebaseConflictError
func NewRebaseConflictError(path string, message string) *RebaseConflictError {
	return &RebaseConflictError{Path: path, Message: message}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
