package cli

import (
	"github.com/spf13/cobra"

	"grit.dev/grit/internal/actions"
)

// newFeatureCmd creates the feature command
func newFeatureCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "feature",
		Short: "Sync, then create or switch to a feature branch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.Feature(cmd.Context(), rctx, actions.FeatureOptions{
				Name: name,
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the feature branch")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
