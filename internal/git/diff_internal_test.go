package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitZ(t *testing.T) {
	require.Nil(t, splitZ(""))
	require.Nil(t, splitZ("\x00"))
	require.Equal(t, []string{"a"}, splitZ("a\x00"))
	require.Equal(t, []string{"a", "b"}, splitZ("a\x00b\x00"))
}

func TestParseNumstat(t *testing.T) {
	t.Run("plain entries", func(t *testing.T) {
		counts := parseNumstat("10\t2\tmain.go\x000\t5\tinternal/api/handler.go\x00")

		require.Len(t, counts, 2)
		require.Equal(t, 10, counts["main.go"].insertions)
		require.Equal(t, 2, counts["main.go"].deletions)
		require.Equal(t, 5, counts["internal/api/handler.go"].deletions)
	})

	t.Run("binary entries", func(t *testing.T) {
		counts := parseNumstat("-\t-\tlogo.png\x00")

		require.True(t, counts["logo.png"].binary)
		require.Zero(t, counts["logo.png"].insertions)
	})

	t.Run("rename entries are keyed by the new path", func(t *testing.T) {
		counts := parseNumstat("3\t1\t\x00old/name.go\x00new/name.go\x00")

		require.Len(t, counts, 1)
		require.Equal(t, 3, counts["new/name.go"].insertions)
		require.Equal(t, 1, counts["new/name.go"].deletions)
	})
}
