package cli

import (
	"github.com/spf13/cobra"

	"grit.dev/grit/internal/actions"
)

// newSaveCmd creates the save command
func newSaveCmd() *cobra.Command {
	var (
		commitMessage string
		dryRun        bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Stage, commit and push the current state",
		Long: `Stage everything, commit with a generated conventional-commit message
(or an explicit one), and push. Pulls first so the branch stays current.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.Save(cmd.Context(), rctx, actions.SaveOptions{
				Message: commitMessage,
				DryRun:  dryRun,
			})
		},
	}

	cmd.Flags().StringVarP(&commitMessage, "message", "m", "", "commit message; skips message generation")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview the message and changes without committing")

	return cmd
}
