// Package analyze turns raw staged file diffs into a structured change
// summary used for commit-message synthesis. Pure transformations only;
// nothing in this package touches the repository.
package analyze

import (
	"sort"

	"grit.dev/grit/internal/git"
)

// ChangeKind classifies what happened to a single file
type ChangeKind int

const (
	// Added means the file is new in this diff
	Added ChangeKind = iota
	// Modified means the file existed and its content changed
	Modified
	// Deleted means the file was removed
	Deleted
	// Renamed means the file moved, possibly with content changes
	Renamed
)

// String returns the lower-case name of the kind
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	case Renamed:
		return "renamed"
	}
	return "unknown"
}

// ChangeRecord is one file-level entry of a change summary. Immutable
// once computed for a given diff snapshot.
type ChangeRecord struct {
	Path       string
	Kind       ChangeKind
	Insertions int
	Deletions  int
}

// ChangeSummary aggregates the records of one diff snapshot. Records are
// ordered by path, ascending, byte-wise, so downstream message
// generation is reproducible for identical diffs.
type ChangeSummary struct {
	Records []ChangeRecord

	// TotalInsertions and TotalDeletions are line counts summed over
	// all records. TotalModifications counts the records whose kind is
	// Modified.
	TotalInsertions    int
	TotalDeletions     int
	TotalModifications int
}

// IsEmpty reports whether the summary contains no changes. Downstream
// treats this as the signal to short-circuit a save with NothingToCommit.
func (s ChangeSummary) IsEmpty() bool {
	return len(s.Records) == 0
}

// Summarize converts the gateway's staged file diffs into a ChangeSummary
func Summarize(diffs []git.FileDiff) ChangeSummary {
	summary := ChangeSummary{}

	for _, d := range diffs {
		record := ChangeRecord{
			Path:       d.Path,
			Kind:       kindFromStatus(d.Status),
			Insertions: d.Insertions,
			Deletions:  d.Deletions,
		}
		summary.Records = append(summary.Records, record)
	}

	sort.Slice(summary.Records, func(i, j int) bool {
		return summary.Records[i].Path < summary.Records[j].Path
	})

	for _, record := range summary.Records {
		summary.TotalInsertions += record.Insertions
		summary.TotalDeletions += record.Deletions
		if record.Kind == Modified {
			summary.TotalModifications++
		}
	}

	return summary
}

// kindFromStatus maps a git status letter to a ChangeKind. Copies and
// type changes are treated as additions and modifications respectively.
func kindFromStatus(status byte) ChangeKind {
	switch status {
	case 'A', 'C':
		return Added
	case 'D':
		return Deleted
	case 'R':
		return Renamed
	default:
		return Modified
	}
}
