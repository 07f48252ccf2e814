package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// ConfigResolver turns the global --config and --token flags into a loaded Config.
type ConfigResolver struct {
	load entities.ConfigLoader
	find func() (string, error)
}

// NewConfigResolver creates a resolver that searches the default locations
// when --config is not given.
func NewConfigResolver(load entities.ConfigLoader) *ConfigResolver {
	return &ConfigResolver{load: load, find: entities.FindConfigFile}
}

// Resolve loads the configuration selected by the command's flags.
func (it *ConfigResolver) Resolve(cmd *cobra.Command) (*entities.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	token, _ := cmd.Flags().GetString("token")

	if configPath == "" {
		var err error
		configPath, err = it.find()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w (specify one with --config or create .githubfs.yaml)", err,
			)
		}
	}
	logger.Debugf("Using config file: %s", configPath)

	cfg, err := it.load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.OverrideToken(token)
	return cfg, nil
}

func addMessageFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("message", "m", "", "Commit message (default: derived from the operation)")
}

func messageFlag(cmd *cobra.Command) string {
	message, _ := cmd.Flags().GetString("message")
	return message
}
