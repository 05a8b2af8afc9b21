// Package git provides low-level Git operations.
//
// It wraps git command execution and go-git and provides a Go-friendly
// interface for:
//   - Working-tree state queries (status, staged diff)
//   - Commit operations (stage, commit)
//   - History queries (merge-base, ancestry)
//   - Remote operations (fetch, pull, push, remote config)
//   - Branch operations (create, delete, checkout, upstream tracking)
//
// This package should be the only place where git is executed.
package git
