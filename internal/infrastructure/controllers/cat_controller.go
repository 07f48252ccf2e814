package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/githubfs/internal/domain/commands"
	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// CatController handles the "cat" subcommand.
type CatController struct {
	command  commands.Read
	resolver *ConfigResolver
}

// NewCatController creates a new CatController.
func NewCatController(command commands.Read, resolver *ConfigResolver) *CatController {
	return &CatController{command: command, resolver: resolver}
}

// GetBind returns the Cobra command metadata for the cat controller.
func (it *CatController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cat <path>",
		Short: "Print a file of the repository",
		Long:  "Stream the raw contents of a file at the configured reference to stdout.",
		Args:  cobra.ExactArgs(1),
	}
}

func (it *CatController) AddFlags(_ *cobra.Command) {}

func (it *CatController) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := it.resolver.Resolve(cmd)
	if err != nil {
		return err
	}
	return it.command.Execute(context.Background(), cfg, args[0], cmd.OutOrStdout())
}
