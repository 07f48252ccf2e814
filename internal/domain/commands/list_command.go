package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	infraRepos "github.com/rios0rios0/githubfs/internal/infrastructure/repositories"
)

// List is the interface for the ls command.
type List interface {
	Execute(ctx context.Context, cfg *entities.Config, opts ListOptions) ([]entities.Metadata, error)
}

// ListOptions holds runtime options for a listing.
type ListOptions struct {
	Directory string
	Recursive bool
}

// ListCommand lists a directory of the configured repository.
type ListCommand struct {
	registry *infraRepos.FilesystemRegistry
}

// NewListCommand creates a new ListCommand with the given filesystem registry.
func NewListCommand(registry *infraRepos.FilesystemRegistry) *ListCommand {
	return &ListCommand{registry: registry}
}

// Execute returns the entries below opts.Directory.
func (it *ListCommand) Execute(
	ctx context.Context,
	cfg *entities.Config,
	opts ListOptions,
) ([]entities.Metadata, error) {
	fs, err := openFilesystem(it.registry, cfg)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Listing %q in %s (recursive: %t)", opts.Directory, cfg.Repository, opts.Recursive)
	return fs.ListContents(ctx, opts.Directory, opts.Recursive)
}
