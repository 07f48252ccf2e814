package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	"github.com/rios0rios0/githubfs/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/githubfs/internal/infrastructure/repositories"
)

// Stat is the interface for the stat command.
type Stat interface {
	Execute(ctx context.Context, cfg *entities.Config, filePath string) (*entities.Metadata, error)
}

// StatCommand gathers everything the backend can tell about a single entry.
type StatCommand struct {
	registry *infraRepos.FilesystemRegistry
}

// NewStatCommand creates a new StatCommand with the given filesystem registry.
func NewStatCommand(registry *infraRepos.FilesystemRegistry) *StatCommand {
	return &StatCommand{registry: registry}
}

// Execute merges metadata, visibility and, for files, mimetype and timestamp
// into one record. The contents are never part of the result.
func (it *StatCommand) Execute(
	ctx context.Context,
	cfg *entities.Config,
	filePath string,
) (*entities.Metadata, error) {
	fs, err := openFilesystem(it.registry, cfg)
	if err != nil {
		return nil, err
	}

	record, err := fs.GetMetadata(ctx, filePath)
	if err != nil {
		return nil, err
	}

	visibility, err := fs.GetVisibility(ctx, filePath)
	if err != nil {
		return nil, err
	}
	record.Visibility = visibility.Visibility

	if record.IsDir() {
		return record, nil
	}

	if err = mergeFileDetails(ctx, fs, filePath, record); err != nil {
		return nil, err
	}
	return record, nil
}

func mergeFileDetails(
	ctx context.Context,
	fs repositories.FilesystemRepository,
	filePath string,
	record *entities.Metadata,
) error {
	mime, err := fs.GetMimetype(ctx, filePath)
	if err != nil {
		return err
	}
	record.Mimetype = mime.Mimetype

	timestamp, err := fs.GetTimestamp(ctx, filePath)
	switch {
	case errors.Is(err, entities.ErrNotFound):
		logger.Debugf("No commit history for %q", filePath)
	case err != nil:
		return err
	default:
		record.Timestamp = timestamp.Timestamp
	}
	return nil
}
