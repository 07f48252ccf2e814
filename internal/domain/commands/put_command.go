package commands

import (
	"context"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	infraRepos "github.com/rios0rios0/githubfs/internal/infrastructure/repositories"
)

// Put is the interface for the put command.
type Put interface {
	Execute(ctx context.Context, cfg *entities.Config, opts PutOptions) (*entities.Metadata, error)
}

// PutOptions holds runtime options for uploading a file.
type PutOptions struct {
	Path    string
	Reader  io.Reader
	Update  bool // replace an existing file instead of creating one
	Message string
}

// PutCommand uploads a local stream to the configured branch.
type PutCommand struct {
	registry *infraRepos.FilesystemRegistry
}

// NewPutCommand creates a new PutCommand with the given filesystem registry.
func NewPutCommand(registry *infraRepos.FilesystemRegistry) *PutCommand {
	return &PutCommand{registry: registry}
}

// Execute creates or, with opts.Update, replaces the remote file.
func (it *PutCommand) Execute(
	ctx context.Context,
	cfg *entities.Config,
	opts PutOptions,
) (*entities.Metadata, error) {
	fs, err := openFilesystem(it.registry, cfg)
	if err != nil {
		return nil, err
	}

	writeOpts := entities.WriteOptions{Message: opts.Message}
	if opts.Update {
		logger.Infof("Updating %q in %s", opts.Path, cfg.Repository)
		return fs.UpdateStream(ctx, opts.Path, opts.Reader, writeOpts)
	}
	logger.Infof("Creating %q in %s", opts.Path, cfg.Repository)
	return fs.WriteStream(ctx, opts.Path, opts.Reader, writeOpts)
}
