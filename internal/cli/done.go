package cli

import (
	"github.com/spf13/cobra"

	"grit.dev/grit/internal/actions"
)

// newDoneCmd creates the done command
func newDoneCmd() *cobra.Command {
	var (
		noClean bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Finish the feature branch: switch to trunk, pull, clean up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.Done(cmd.Context(), rctx, actions.DoneOptions{
				NoClean: noClean,
				Force:   force,
			})
		},
	}

	cmd.Flags().BoolVar(&noClean, "no-clean", false, "keep the feature branch instead of deleting it")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}
