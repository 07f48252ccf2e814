package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	infraRepos "github.com/rios0rios0/githubfs/internal/infrastructure/repositories"
)

// Read is the interface for the cat command.
type Read interface {
	Execute(ctx context.Context, cfg *entities.Config, filePath string, out io.Writer) error
}

// ReadCommand streams a remote file into a writer.
type ReadCommand struct {
	registry *infraRepos.FilesystemRegistry
}

// NewReadCommand creates a new ReadCommand with the given filesystem registry.
func NewReadCommand(registry *infraRepos.FilesystemRegistry) *ReadCommand {
	return &ReadCommand{registry: registry}
}

// Execute copies the contents of filePath to out.
func (it *ReadCommand) Execute(ctx context.Context, cfg *entities.Config, filePath string, out io.Writer) error {
	fs, err := openFilesystem(it.registry, cfg)
	if err != nil {
		return err
	}

	record, err := fs.ReadStream(ctx, filePath)
	if err != nil {
		return err
	}
	defer record.Stream.Close()

	if _, err = io.Copy(out, record.Stream); err != nil {
		return fmt.Errorf("failed to copy %q: %w", filePath, err)
	}
	return nil
}
