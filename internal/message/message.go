// Package message renders a classified change summary into the final
// commit message. Rendering is deterministic: identical inputs always
// produce a byte-identical message, which is what makes a dry-run
// preview trustworthy.
package message

import (
	"fmt"

	"grit.dev/grit/internal/analyze"
	"grit.dev/grit/internal/classify"
)

// CommitMessage is a composed commit message. Never mutated after
// creation: it is either the operator's override used verbatim or
// generated fresh from the summary.
type CommitMessage struct {
	Header string
	Body   string
}

// String returns the full message text
func (m CommitMessage) String() string {
	if m.Body == "" {
		return m.Header
	}
	return m.Header + "\n\n" + m.Body
}

// Compose builds the commit message. A non-empty override is used
// verbatim as the header and skips generation entirely.
func Compose(cls classify.Classification, summary analyze.ChangeSummary, override string) CommitMessage {
	if override != "" {
		return CommitMessage{Header: override}
	}

	header := string(cls.Type)
	if cls.Scope != "" {
		header += fmt.Sprintf("(%s)", cls.Scope)
	}
	header += ": " + describe(summary)

	return CommitMessage{Header: header}
}

// describe summarizes the change counts, e.g.
// "added 1 file (+10, -0, ~0)" or "updated 3 files (+12, -4, ~2)"
func describe(summary analyze.ChangeSummary) string {
	noun := "files"
	if len(summary.Records) == 1 {
		noun = "file"
	}

	return fmt.Sprintf("%s %d %s (+%d, -%d, ~%d)",
		verbFor(summary),
		len(summary.Records),
		noun,
		summary.TotalInsertions,
		summary.TotalDeletions,
		summary.TotalModifications,
	)
}

// verbFor picks the verb from the record kinds: uniform additions or
// deletions get their own verb, everything else is an update
func verbFor(summary analyze.ChangeSummary) string {
	allAdded, allDeleted := true, true
	for _, record := range summary.Records {
		if record.Kind != analyze.Added {
			allAdded = false
		}
		if record.Kind != analyze.Deleted {
			allDeleted = false
		}
	}

	switch {
	case allAdded:
		return "added"
	case allDeleted:
		return "removed"
	default:
		return "updated"
	}
}
