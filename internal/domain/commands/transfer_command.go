package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	infraRepos "github.com/rios0rios0/githubfs/internal/infrastructure/repositories"
)

// Move is the interface for the mv command.
type Move interface {
	Execute(ctx context.Context, cfg *entities.Config, opts TransferOptions) error
}

// Copy is the interface for the cp command.
type Copy interface {
	Execute(ctx context.Context, cfg *entities.Config, opts TransferOptions) error
}

// TransferOptions holds runtime options for moving or copying an entry.
type TransferOptions struct {
	Source  string
	Target  string
	Message string
}

// MoveCommand renames a file or directory in a single commit.
type MoveCommand struct {
	registry *infraRepos.FilesystemRegistry
}

// NewMoveCommand creates a new MoveCommand with the given filesystem registry.
func NewMoveCommand(registry *infraRepos.FilesystemRegistry) *MoveCommand {
	return &MoveCommand{registry: registry}
}

func (it *MoveCommand) Execute(ctx context.Context, cfg *entities.Config, opts TransferOptions) error {
	fs, err := openFilesystem(it.registry, cfg)
	if err != nil {
		return err
	}

	logger.Infof("Moving %q to %q in %s", opts.Source, opts.Target, cfg.Repository)
	return fs.Rename(ctx, opts.Source, opts.Target, entities.WriteOptions{Message: opts.Message})
}

// CopyCommand duplicates a file or directory in a single commit.
type CopyCommand struct {
	registry *infraRepos.FilesystemRegistry
}

// NewCopyCommand creates a new CopyCommand with the given filesystem registry.
func NewCopyCommand(registry *infraRepos.FilesystemRegistry) *CopyCommand {
	return &CopyCommand{registry: registry}
}

func (it *CopyCommand) Execute(ctx context.Context, cfg *entities.Config, opts TransferOptions) error {
	fs, err := openFilesystem(it.registry, cfg)
	if err != nil {
		return err
	}

	logger.Infof("Copying %q to %q in %s", opts.Source, opts.Target, cfg.Repository)
	return fs.Copy(ctx, opts.Source, opts.Target, entities.WriteOptions{Message: opts.Message})
}
