package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/githubfs/internal/domain/commands"
	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// MoveController handles the "mv" subcommand.
type MoveController struct {
	command  commands.Move
	resolver *ConfigResolver
}

// NewMoveController creates a new MoveController.
func NewMoveController(command commands.Move, resolver *ConfigResolver) *MoveController {
	return &MoveController{command: command, resolver: resolver}
}

// GetBind returns the Cobra command metadata for the move controller.
func (it *MoveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "mv <src> <dst>",
		Short: "Rename a file or directory",
		Long:  "Move a file or a whole directory to a new path in a single commit on the configured branch.",
		Args:  cobra.ExactArgs(2), //nolint:mnd // source and target
	}
}

func (it *MoveController) AddFlags(cmd *cobra.Command) {
	addMessageFlag(cmd)
}

func (it *MoveController) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := it.resolver.Resolve(cmd)
	if err != nil {
		return err
	}
	return it.command.Execute(context.Background(), cfg, transferOptions(cmd, args))
}

// CopyController handles the "cp" subcommand.
type CopyController struct {
	command  commands.Copy
	resolver *ConfigResolver
}

// NewCopyController creates a new CopyController.
func NewCopyController(command commands.Copy, resolver *ConfigResolver) *CopyController {
	return &CopyController{command: command, resolver: resolver}
}

// GetBind returns the Cobra command metadata for the copy controller.
func (it *CopyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cp <src> <dst>",
		Short: "Copy a file or directory",
		Long:  "Copy a file or a whole directory to a new path in a single commit on the configured branch.",
		Args:  cobra.ExactArgs(2), //nolint:mnd // source and target
	}
}

func (it *CopyController) AddFlags(cmd *cobra.Command) {
	addMessageFlag(cmd)
}

func (it *CopyController) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := it.resolver.Resolve(cmd)
	if err != nil {
		return err
	}
	return it.command.Execute(context.Background(), cfg, transferOptions(cmd, args))
}

func transferOptions(cmd *cobra.Command, args []string) commands.TransferOptions {
	return commands.TransferOptions{
		Source:  args[0],
		Target:  args[1],
		Message: messageFlag(cmd),
	}
}
