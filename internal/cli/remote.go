package cli

import (
	"github.com/spf13/cobra"

	"grit.dev/grit/internal/actions"
)

// newRemoteCmd creates the remote command
func newRemoteCmd() *cobra.Command {
	var remoteName string

	cmd := &cobra.Command{
		Use:   "remote <url>",
		Short: "Set or update a remote URL and reconcile histories",
		Long: `Set or update a remote URL (defaults to origin), then fetch and
reconcile the local branch with it: fast-forward when possible, rebase
when diverged, and handle the unrelated-history case automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.Link(cmd.Context(), rctx, actions.LinkOptions{
				URL:  args[0],
				Name: remoteName,
			})
		},
	}

	cmd.Flags().StringVarP(&remoteName, "name", "n", "origin", "name of the remote")

	return cmd
}
