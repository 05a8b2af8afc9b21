// Package config holds runtime configuration for grit.
// Values are populated from .grit.yaml, GRIT_* env vars, and CLI flags.
package config

import "github.com/spf13/viper"

// Config holds the tool settings that commands consult
type Config struct {
	// Remote is the default remote name used by save, feature and done
	Remote string `mapstructure:"remote"`
	// Trunk is the long-lived branch done returns to; empty means detect
	// main then master
	Trunk string `mapstructure:"trunk"`
	// ConfirmDelete controls whether done prompts before deleting the
	// finished feature branch
	ConfirmDelete bool `mapstructure:"confirm_delete"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("remote", "origin")
	viper.SetDefault("trunk", "")
	viper.SetDefault("confirm_delete", true)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
