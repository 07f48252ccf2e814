package commands

import (
	"context"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	infraRepos "github.com/rios0rios0/githubfs/internal/infrastructure/repositories"
)

// MakeDir is the interface for the mkdir command.
type MakeDir interface {
	Execute(ctx context.Context, cfg *entities.Config, dirname, message string) (*entities.Metadata, error)
}

// MakeDirCommand creates a directory on the configured branch.
type MakeDirCommand struct {
	registry *infraRepos.FilesystemRegistry
}

// NewMakeDirCommand creates a new MakeDirCommand with the given filesystem registry.
func NewMakeDirCommand(registry *infraRepos.FilesystemRegistry) *MakeDirCommand {
	return &MakeDirCommand{registry: registry}
}

func (it *MakeDirCommand) Execute(
	ctx context.Context,
	cfg *entities.Config,
	dirname, message string,
) (*entities.Metadata, error) {
	fs, err := openFilesystem(it.registry, cfg)
	if err != nil {
		return nil, err
	}
	return fs.CreateDir(ctx, dirname, entities.WriteOptions{Message: message})
}
