package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/githubfs/internal/domain/commands"
	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

const yamlIndent = 2

// StatController handles the "stat" subcommand.
type StatController struct {
	command  commands.Stat
	resolver *ConfigResolver
}

// NewStatController creates a new StatController.
func NewStatController(command commands.Stat, resolver *ConfigResolver) *StatController {
	return &StatController{command: command, resolver: resolver}
}

// GetBind returns the Cobra command metadata for the stat controller.
func (it *StatController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "stat <path>",
		Short: "Show the metadata of an entry",
		Long: `Print everything known about a file or directory as YAML:
type, sha, size, mimetype, last commit date and visibility.
Values the backend cannot supply are printed as null.`,
		Args: cobra.ExactArgs(1),
	}
}

func (it *StatController) AddFlags(_ *cobra.Command) {}

func (it *StatController) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := it.resolver.Resolve(cmd)
	if err != nil {
		return err
	}

	record, err := it.command.Execute(context.Background(), cfg, args[0])
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(yamlIndent)
	if err = encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	return encoder.Close()
}
