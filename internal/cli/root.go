// Package cli wires the grit commands. Commands stay thin: they parse
// flags, build the runtime context, and delegate to internal/actions.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"grit.dev/grit/internal/runtime"
)

var repoPath string

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grit",
		Short: "Grit automates the routine git workflows: branch, save, sync, finish",
		Long: `Grit automates the routine git workflows: branch, save, sync, finish.

It generates conventional commit messages from your diff, keeps branches
tracking their remotes, and untangles unrelated histories when linking a
repository to a pre-populated remote.`,
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&repoPath, "path", "p", ".", "path of the repository")

	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newRemoteCmd())
	rootCmd.AddCommand(newFeatureCmd())
	rootCmd.AddCommand(newDoneCmd())
	rootCmd.AddCommand(newCredsCmd())

	return rootCmd
}

func initConfig() {
	viper.SetConfigName(".grit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("GRIT")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// getContext builds the runtime context for the repository selected by --path
func getContext() (*runtime.Context, error) {
	return runtime.GetContext(repoPath)
}
