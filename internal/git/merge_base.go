package git

import (
	"fmt"
)

// MergeBase returns the merge base between two refs and whether one
// exists. No merge base means the two histories are unrelated.
func (r *Repo) MergeBase(ref1Name, ref2Name string) (string, bool, error) {
	repo, err := r.object()
	if err != nil {
		return "", false, err
	}

	hash1, err := resolveRefHash(repo, ref1Name)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve ref1: %w", err)
	}

	hash2, err := resolveRefHash(repo, ref2Name)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve ref2: %w", err)
	}

	commit1, err := repo.CommitObject(hash1)
	if err != nil {
		return "", false, fmt.Errorf("failed to get commit1: %w", err)
	}

	commit2, err := repo.CommitObject(hash2)
	if err != nil {
		return "", false, fmt.Errorf("failed to get commit2: %w", err)
	}

	mergeBases, err := commit1.MergeBase(commit2)
	if err != nil {
		return "", false, fmt.Errorf("failed to find merge base: %w", err)
	}

	if len(mergeBases) == 0 {
		return "", false, nil
	}

	return mergeBases[0].Hash.String(), true, nil
}

// IsAncestor checks if the first ref is an ancestor of the second ref
func (r *Repo) IsAncestor(ancestor, descendant string) (bool, error) {
	repo, err := r.object()
	if err != nil {
		return false, err
	}

	ancestorHash, err := resolveRefHash(repo, ancestor)
	if err != nil {
		return false, fmt.Errorf("failed to resolve ancestor ref: %w", err)
	}

	descendantHash, err := resolveRefHash(repo, descendant)
	if err != nil {
		return false, fmt.Errorf("failed to resolve descendant ref: %w", err)
	}

	if ancestorHash == descendantHash {
		return true, nil
	}

	ancestorCommit, err := repo.CommitObject(ancestorHash)
	if err != nil {
		return false, fmt.Errorf("failed to get ancestor commit: %w", err)
	}

	descendantCommit, err := repo.CommitObject(descendantHash)
	if err != nil {
		return false, fmt.Errorf("failed to get descendant commit: %w", err)
	}

	return ancestorCommit.IsAncestor(descendantCommit)
}
