// Package runtime provides a context type that holds the repository
// gateway, configuration and printer for use throughout the application.
// This avoids passing multiple parameters through every command.
package runtime

import (
	"grit.dev/grit/internal/config"
	"grit.dev/grit/internal/git"
	"grit.dev/grit/internal/output"
)

// Context provides access to the gateway and output for commands
type Context struct {
	Gateway git.Gateway
	Splog   *output.Splog
	Config  config.Config
}

// GetContext opens the repository at path and builds the command context
func GetContext(path string) (*Context, error) {
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	return &Context{
		Gateway: repo,
		Splog:   output.NewSplog(),
		Config:  config.Load(),
	}, nil
}
