package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory
// using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Initialize with optimized config; avoid reading global config.
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure Git user (required for commits)
	if err := repo.runGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.runGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// runGitCommand executes a git command in the repository directory.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	return cmd.Run()
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFile writes a file (creating parent directories) without staging it.
func (r *GitRepo) WriteFile(relPath, content string) error {
	filePath := filepath.Join(r.Dir, relPath)
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// DeleteFile removes a file from the working tree without staging the removal.
func (r *GitRepo) DeleteFile(relPath string) error {
	return os.Remove(filepath.Join(r.Dir, relPath))
}

// CreateChange writes a file and stages it unless unstaged is true.
func (r *GitRepo) CreateChange(relPath, content string, unstaged bool) error {
	if err := r.WriteFile(relPath, content); err != nil {
		return err
	}
	if !unstaged {
		return r.runGitCommand("add", relPath)
	}
	return nil
}

// CreateChangeAndCommit writes a file, stages everything and commits it.
func (r *GitRepo) CreateChangeAndCommit(relPath, content, message string) error {
	if err := r.WriteFile(relPath, content); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "."); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", message)
}

// CreateAndCheckoutBranch creates and checks out a new branch.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.runGitCommand("checkout", "-b", name)
}

// CheckoutBranch checks out a branch.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.runGitCommand("checkout", name)
}

// CurrentBranchName returns the current branch name.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.RunGitCommandAndGetOutput("symbolic-ref", "--short", "HEAD")
}

// GetCurrentSHA returns the SHA of HEAD.
func (r *GitRepo) GetCurrentSHA() (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "HEAD")
}

// GetBranchSHA returns the SHA a branch points at.
func (r *GitRepo) GetBranchSHA(branch string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "refs/heads/"+branch)
}

// GetCommitCount returns the number of commits reachable from HEAD.
func (r *GitRepo) GetCommitCount() (int, error) {
	output, err := r.RunGitCommandAndGetOutput("rev-list", "--count", "HEAD")
	if err != nil {
		return 0, err
	}
	var count int
	_, err = fmt.Sscanf(output, "%d", &count)
	return count, err
}

// ListCurrentBranchCommitMessages returns the commit subjects of the
// current branch, newest first.
func (r *GitRepo) ListCurrentBranchCommitMessages() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("log", "--pretty=format:%s")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// CreateBareRepo creates a bare git repository as a sibling directory and
// returns its path. The repository is not added as a remote.
func (r *GitRepo) CreateBareRepo(name string) (string, error) {
	bareDir := r.Dir + "-" + name + ".git"

	cmd := exec.Command("git", "init", "--bare", bareDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w", err)
	}
	return bareDir, nil
}

// CreateBareRemote creates a bare git repository and adds it as a remote.
// Returns the path to the bare repository.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	bareDir, err := r.CreateBareRepo(name)
	if err != nil {
		return "", err
	}
	if err := r.runGitCommand("remote", "add", name, bareDir); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}
	return bareDir, nil
}

// PushBranch pushes a branch to a remote.
func (r *GitRepo) PushBranch(remote, branch string) error {
	return r.runGitCommand("push", remote, branch)
}

// HasStagedChanges reports whether anything is staged.
func (r *GitRepo) HasStagedChanges() (bool, error) {
	output, err := r.RunGitCommandAndGetOutput("diff", "--cached", "--name-only")
	if err != nil {
		return false, err
	}
	return output != "", nil
}
