package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/githubfs/internal/domain/commands"
	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// RemoveController handles the "rm" subcommand.
type RemoveController struct {
	command  commands.Remove
	resolver *ConfigResolver
}

// NewRemoveController creates a new RemoveController.
func NewRemoveController(command commands.Remove, resolver *ConfigResolver) *RemoveController {
	return &RemoveController{command: command, resolver: resolver}
}

// GetBind returns the Cobra command metadata for the remove controller.
func (it *RemoveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "rm <path>",
		Short: "Delete a file or directory",
		Long: `Delete a file from the configured branch.
With --dir everything below the directory is removed in a single commit.`,
		Args: cobra.ExactArgs(1),
	}
}

// AddFlags adds the remove-specific flags to the given Cobra command.
func (it *RemoveController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("dir", "d", false, "Delete a directory and its contents")
	addMessageFlag(cmd)
}

func (it *RemoveController) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := it.resolver.Resolve(cmd)
	if err != nil {
		return err
	}

	directory, _ := cmd.Flags().GetBool("dir")
	return it.command.Execute(context.Background(), cfg, commands.RemoveOptions{
		Path:      args[0],
		Directory: directory,
		Message:   messageFlag(cmd),
	})
}
