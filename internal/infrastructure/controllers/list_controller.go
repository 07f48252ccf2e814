package controllers

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/githubfs/internal/domain/commands"
	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// ListController handles the "ls" subcommand.
type ListController struct {
	command  commands.List
	resolver *ConfigResolver
}

// NewListController creates a new ListController.
func NewListController(command commands.List, resolver *ConfigResolver) *ListController {
	return &ListController{command: command, resolver: resolver}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "ls [dir]",
		Short: "List a directory of the repository",
		Long: `List the entries of a directory at the configured reference.
Without an argument the repository root is listed.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("recursive", "r", false, "Descend into subdirectories")
}

// Execute prints one line per entry: type, size and path.
func (it *ListController) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := it.resolver.Resolve(cmd)
	if err != nil {
		return err
	}

	recursive, _ := cmd.Flags().GetBool("recursive")
	opts := commands.ListOptions{Recursive: recursive}
	if len(args) > 0 {
		opts.Directory = args[0]
	}

	records, err := it.command.Execute(context.Background(), cfg, opts)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, record := range records {
		size := "-"
		if record.Size != nil && !record.IsDir() {
			size = fmt.Sprint(*record.Size)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", record.Type, size, record.Path)
	}
	return writer.Flush()
}
