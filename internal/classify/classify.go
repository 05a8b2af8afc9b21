// Package classify maps a change summary onto a conventional-commit type.
//
// Classification is an ordered cascade of predicate→type rules evaluated
// over the whole summary; the first matching rule wins. Every rule is a
// pure function, so classification is deterministic and total: every
// summary, including the empty one, maps to exactly one result.
package classify

import (
	"grit.dev/grit/internal/analyze"
)

// Type is a conventional-commit type
type Type string

const (
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypeChore    Type = "chore"
	TypeDocs     Type = "docs"
	TypeRefactor Type = "refactor"
	TypeTest     Type = "test"
	TypeBuild    Type = "build"

	// TypeNone is the sentinel for an empty summary; callers short-circuit
	// with a nothing-to-commit condition before composing a message.
	TypeNone Type = ""
)

// Classification is the result of classifying one change summary
type Classification struct {
	Type Type
	// Scope is a dominant path segment or filename stem; empty when the
	// changed paths share no common origin.
	Scope string
}

// fixMaxLineDelta is the largest total line delta (insertions plus
// deletions) still considered defect-sized for the fix/chore boundary.
const fixMaxLineDelta = 24

// rule is one predicate→type pair of the cascade
type rule struct {
	name  string
	match func(analyze.ChangeSummary) bool
	typ   Type
}

// rules is evaluated top to bottom; order is part of the contract.
var rules = []rule{
	{"only-docs", allPaths(isDocPath), TypeDocs},
	{"only-tests", allPaths(isTestPath), TypeTest},
	{"only-build", allPaths(isBuildPath), TypeBuild},
	{"all-deleted", allKinds(analyze.Deleted), TypeChore},
	{"all-added", allKinds(analyze.Added), TypeFeat},
	{"shrinking-refactor", isShrinkingModification, TypeRefactor},
	{"any-added", anyKind(analyze.Added), TypeFeat},
	{"defect-sized", isDefectSized, TypeFix},
}

// Classify produces exactly one Classification for the given summary
func Classify(summary analyze.ChangeSummary) Classification {
	if summary.IsEmpty() {
		return Classification{Type: TypeNone}
	}

	for _, r := range rules {
		if r.match(summary) {
			return Classification{Type: r.typ, Scope: deriveScope(summary)}
		}
	}

	return Classification{Type: TypeChore, Scope: deriveScope(summary)}
}

// allPaths matches when every record's path satisfies the predicate
func allPaths(pred func(string) bool) func(analyze.ChangeSummary) bool {
	return func(s analyze.ChangeSummary) bool {
		for _, record := range s.Records {
			if !pred(record.Path) {
				return false
			}
		}
		return true
	}
}

// allKinds matches when every record has the given kind
func allKinds(kind analyze.ChangeKind) func(analyze.ChangeSummary) bool {
	return func(s analyze.ChangeSummary) bool {
		for _, record := range s.Records {
			if record.Kind != kind {
				return false
			}
		}
		return true
	}
}

// anyKind matches when at least one record has the given kind
func anyKind(kind analyze.ChangeKind) func(analyze.ChangeSummary) bool {
	return func(s analyze.ChangeSummary) bool {
		for _, record := range s.Records {
			if record.Kind == kind {
				return true
			}
		}
		return false
	}
}

// isShrinkingModification matches summaries that only modify files and
// remove more lines than they add
func isShrinkingModification(s analyze.ChangeSummary) bool {
	for _, record := range s.Records {
		if record.Kind != analyze.Modified {
			return false
		}
	}
	return s.TotalDeletions > s.TotalInsertions
}

// isDefectSized matches small, localized changes: total line delta at or
// below fixMaxLineDelta
func isDefectSized(s analyze.ChangeSummary) bool {
	return s.TotalInsertions+s.TotalDeletions <= fixMaxLineDelta
}
