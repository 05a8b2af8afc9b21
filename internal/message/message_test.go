package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grit.dev/grit/internal/analyze"
	"grit.dev/grit/internal/classify"
	"grit.dev/grit/internal/message"
)

func TestCompose(t *testing.T) {
	t.Run("single added file", func(t *testing.T) {
		summary := analyze.ChangeSummary{
			Records: []analyze.ChangeRecord{
				{Path: "internal/api/handler.go", Kind: analyze.Added, Insertions: 42},
			},
			TotalInsertions: 42,
		}
		cls := classify.Classify(summary)

		msg := message.Compose(cls, summary, "")
		require.Equal(t, "feat(handler): added 1 file (+42, -0, ~0)", msg.Header)
		require.Equal(t, msg.Header, msg.String())
	})

	t.Run("mixed changes with a shared scope", func(t *testing.T) {
		summary := analyze.ChangeSummary{
			Records: []analyze.ChangeRecord{
				{Path: "server/handler.go", Kind: analyze.Modified, Insertions: 10, Deletions: 4},
				{Path: "server/router.go", Kind: analyze.Added, Insertions: 2},
			},
			TotalInsertions:    12,
			TotalDeletions:     4,
			TotalModifications: 1,
		}
		cls := classify.Classify(summary)

		msg := message.Compose(cls, summary, "")
		require.Equal(t, "feat(server): updated 2 files (+12, -4, ~1)", msg.Header)
	})

	t.Run("deletions without a shared scope", func(t *testing.T) {
		summary := analyze.ChangeSummary{
			Records: []analyze.ChangeRecord{
				{Path: "a/x.go", Kind: analyze.Deleted, Deletions: 30},
				{Path: "b/y.go", Kind: analyze.Deleted, Deletions: 70},
			},
			TotalDeletions: 100,
		}
		cls := classify.Classify(summary)

		msg := message.Compose(cls, summary, "")
		require.Equal(t, "chore: removed 2 files (+0, -100, ~0)", msg.Header)
	})

	t.Run("override is used verbatim", func(t *testing.T) {
		summary := analyze.ChangeSummary{
			Records: []analyze.ChangeRecord{
				{Path: "main.go", Kind: analyze.Modified, Insertions: 1},
			},
			TotalInsertions:    1,
			TotalModifications: 1,
		}
		cls := classify.Classify(summary)

		msg := message.Compose(cls, summary, "release: cut v1.2.0")
		require.Equal(t, "release: cut v1.2.0", msg.Header)
		require.Empty(t, msg.Body)
	})

	t.Run("identical inputs produce identical messages", func(t *testing.T) {
		summary := analyze.ChangeSummary{
			Records: []analyze.ChangeRecord{
				{Path: "internal/api/handler.go", Kind: analyze.Modified, Insertions: 5, Deletions: 2},
			},
			TotalInsertions:    5,
			TotalDeletions:     2,
			TotalModifications: 1,
		}
		cls := classify.Classify(summary)

		first := message.Compose(cls, summary, "")
		second := message.Compose(cls, summary, "")
		require.Equal(t, first, second)
	})
}

func TestCommitMessageString(t *testing.T) {
	msg := message.CommitMessage{Header: "feat: added 1 file (+1, -0, ~0)", Body: "details"}
	require.Equal(t, "feat: added 1 file (+1, -0, ~0)\n\ndetails", msg.String())
}
