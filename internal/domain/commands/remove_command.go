package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	infraRepos "github.com/rios0rios0/githubfs/internal/infrastructure/repositories"
)

// Remove is the interface for the rm command.
type Remove interface {
	Execute(ctx context.Context, cfg *entities.Config, opts RemoveOptions) error
}

// RemoveOptions holds runtime options for a removal.
type RemoveOptions struct {
	Path      string
	Directory bool
	Message   string
}

// RemoveCommand deletes a file or a whole directory.
type RemoveCommand struct {
	registry *infraRepos.FilesystemRegistry
}

// NewRemoveCommand creates a new RemoveCommand with the given filesystem registry.
func NewRemoveCommand(registry *infraRepos.FilesystemRegistry) *RemoveCommand {
	return &RemoveCommand{registry: registry}
}

func (it *RemoveCommand) Execute(ctx context.Context, cfg *entities.Config, opts RemoveOptions) error {
	fs, err := openFilesystem(it.registry, cfg)
	if err != nil {
		return err
	}

	writeOpts := entities.WriteOptions{Message: opts.Message}
	if opts.Directory {
		logger.Infof("Deleting directory %q in %s", opts.Path, cfg.Repository)
		return fs.DeleteDir(ctx, opts.Path, writeOpts)
	}
	logger.Infof("Deleting %q in %s", opts.Path, cfg.Repository)
	return fs.Delete(ctx, opts.Path, writeOpts)
}
