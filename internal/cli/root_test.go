package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, cmd := range root.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd("1.0.0", "abc1234", "2026-01-01")

	t.Run("registers all subcommands", func(t *testing.T) {
		for _, name := range []string{"save", "remote", "feature", "done", "creds"} {
			findCommand(t, root, name)
		}
	})

	t.Run("path flag defaults to the working directory", func(t *testing.T) {
		flag := root.PersistentFlags().Lookup("path")
		require.NotNil(t, flag)
		require.Equal(t, ".", flag.DefValue)
	})

	t.Run("version is assembled from build info", func(t *testing.T) {
		require.Equal(t, "1.0.0 (abc1234, 2026-01-01)", root.Version)
	})

	t.Run("error reporting is left to the entrypoint", func(t *testing.T) {
		require.True(t, root.SilenceErrors)
		require.True(t, root.SilenceUsage)
	})
}

func TestSaveCommandFlags(t *testing.T) {
	root := NewRootCmd("dev", "none", "unknown")
	save := findCommand(t, root, "save")

	require.NotNil(t, save.Flags().Lookup("message"))
	require.NotNil(t, save.Flags().Lookup("dry-run"))
	require.Equal(t, "m", save.Flags().Lookup("message").Shorthand)
}

func TestRemoteCommandFlags(t *testing.T) {
	root := NewRootCmd("dev", "none", "unknown")
	remote := findCommand(t, root, "remote")

	nameFlag := remote.Flags().Lookup("name")
	require.NotNil(t, nameFlag)
	require.Equal(t, "origin", nameFlag.DefValue)
}

func TestDoneCommandFlags(t *testing.T) {
	root := NewRootCmd("dev", "none", "unknown")
	done := findCommand(t, root, "done")

	require.NotNil(t, done.Flags().Lookup("no-clean"))
	require.NotNil(t, done.Flags().Lookup("force"))
}
