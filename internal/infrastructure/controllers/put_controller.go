package controllers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/githubfs/internal/domain/commands"
	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

const stdinMarker = "-"

// PutController handles the "put" subcommand.
type PutController struct {
	command  commands.Put
	resolver *ConfigResolver
}

// NewPutController creates a new PutController.
func NewPutController(command commands.Put, resolver *ConfigResolver) *PutController {
	return &PutController{command: command, resolver: resolver}
}

// GetBind returns the Cobra command metadata for the put controller.
func (it *PutController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "put <path> <local-file|->",
		Short: "Upload a file to the repository",
		Long: `Commit a local file (or stdin when "-" is given) to the configured branch.
Fails if the remote file already exists unless --update is set.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // remote and local path
	}
}

// AddFlags adds the put-specific flags to the given Cobra command.
func (it *PutController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("update", "u", false, "Replace an existing file")
	addMessageFlag(cmd)
}

func (it *PutController) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := it.resolver.Resolve(cmd)
	if err != nil {
		return err
	}

	var reader io.Reader = cmd.InOrStdin()
	if args[1] != stdinMarker {
		file, openErr := os.Open(args[1])
		if openErr != nil {
			return fmt.Errorf("failed to open %q: %w", args[1], openErr)
		}
		defer file.Close()
		reader = file
	}

	update, _ := cmd.Flags().GetBool("update")
	record, err := it.command.Execute(context.Background(), cfg, commands.PutOptions{
		Path:    args[0],
		Reader:  reader,
		Update:  update,
		Message: messageFlag(cmd),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", record.Path, record.SHA)
	return nil
}
