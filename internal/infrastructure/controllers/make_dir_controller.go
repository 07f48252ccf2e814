package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/githubfs/internal/domain/commands"
	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// MakeDirController handles the "mkdir" subcommand.
type MakeDirController struct {
	command  commands.MakeDir
	resolver *ConfigResolver
}

// NewMakeDirController creates a new MakeDirController.
func NewMakeDirController(command commands.MakeDir, resolver *ConfigResolver) *MakeDirController {
	return &MakeDirController{command: command, resolver: resolver}
}

// GetBind returns the Cobra command metadata for the mkdir controller.
func (it *MakeDirController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "mkdir <dir>",
		Short: "Create a directory",
		Long:  "Create a directory on the configured branch by committing a .gitkeep placeholder into it.",
		Args:  cobra.ExactArgs(1),
	}
}

func (it *MakeDirController) AddFlags(cmd *cobra.Command) {
	addMessageFlag(cmd)
}

func (it *MakeDirController) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := it.resolver.Resolve(cmd)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(context.Background(), cfg, args[0], messageFlag(cmd))
	return err
}
