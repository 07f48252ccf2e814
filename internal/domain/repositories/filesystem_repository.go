package repositories

import (
	"context"
	"io"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// FilesystemRepository abstracts a remote file tree behind filesystem operations.
// Each implementation translates the operations into calls against a specific
// backend (e.g. the GitHub contents and git-data APIs).
//
// Operations that produce a record return a non-nil *entities.Metadata on
// success; any field the backend cannot supply for that call is left nil.
type FilesystemRepository interface {
	// Write creates a new file.
	Write(ctx context.Context, path, contents string, opts entities.WriteOptions) (*entities.Metadata, error)
	// WriteStream creates a new file from a reader.
	WriteStream(ctx context.Context, path string, reader io.Reader, opts entities.WriteOptions) (*entities.Metadata, error)
	// Update replaces the contents of an existing file.
	Update(ctx context.Context, path, contents string, opts entities.WriteOptions) (*entities.Metadata, error)
	// UpdateStream replaces the contents of an existing file from a reader.
	UpdateStream(ctx context.Context, path string, reader io.Reader, opts entities.WriteOptions) (*entities.Metadata, error)
	// Rename moves a file or directory to newPath.
	Rename(ctx context.Context, path, newPath string, opts entities.WriteOptions) error
	// Copy duplicates a file or directory at newPath.
	Copy(ctx context.Context, path, newPath string, opts entities.WriteOptions) error
	// Delete removes a file.
	Delete(ctx context.Context, path string, opts entities.WriteOptions) error
	// DeleteDir removes a directory and everything below it.
	DeleteDir(ctx context.Context, dirname string, opts entities.WriteOptions) error
	// CreateDir creates a directory.
	CreateDir(ctx context.Context, dirname string, opts entities.WriteOptions) (*entities.Metadata, error)
	// SetVisibility changes the visibility of an entry.
	SetVisibility(ctx context.Context, path string, visibility entities.Visibility) (*entities.Metadata, error)

	// Has reports whether a file or directory exists.
	Has(ctx context.Context, path string) (bool, error)
	// Read returns a record with Contents set.
	Read(ctx context.Context, path string) (*entities.Metadata, error)
	// ReadStream returns a record with Stream set; the caller must close it.
	ReadStream(ctx context.Context, path string) (*entities.Metadata, error)
	// ListContents lists a directory, descending into subdirectories when recursive.
	ListContents(ctx context.Context, directory string, recursive bool) ([]entities.Metadata, error)
	// GetMetadata returns what the backend knows about a single entry.
	GetMetadata(ctx context.Context, path string) (*entities.Metadata, error)
	// GetSize returns a record with Size set; a directory yields ErrNotAFile.
	GetSize(ctx context.Context, path string) (*entities.Metadata, error)
	// GetMimetype returns a record with Mimetype set.
	GetMimetype(ctx context.Context, path string) (*entities.Metadata, error)
	// GetTimestamp returns a record with Timestamp set.
	GetTimestamp(ctx context.Context, path string) (*entities.Metadata, error)
	// GetVisibility returns a record with Visibility set.
	GetVisibility(ctx context.Context, path string) (*entities.Metadata, error)
}
