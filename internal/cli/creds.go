package cli

import (
	"github.com/spf13/cobra"

	"grit.dev/grit/internal/actions"
)

// newCredsCmd creates the creds command
func newCredsCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "creds <name> <email>",
		Short: "Configure the committer identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.Creds(cmd.Context(), rctx, actions.CredsOptions{
				Name:   args[0],
				Email:  args[1],
				Global: global,
			})
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "set identity globally (~/.gitconfig) instead of locally")

	return cmd
}
