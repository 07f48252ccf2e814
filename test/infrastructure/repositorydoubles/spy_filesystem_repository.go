//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	"github.com/rios0rios0/githubfs/internal/domain/repositories"
)

// WriteCall records a single Write, Update or CreateDir invocation.
type WriteCall struct {
	Path     string
	Contents string
	Update   bool
	Opts     entities.WriteOptions
}

// DeleteCall records a single Delete or DeleteDir invocation.
type DeleteCall struct {
	Path string
	Dir  bool
	Opts entities.WriteOptions
}

// TransferCall records a single Rename or Copy invocation.
type TransferCall struct {
	Source string
	Target string
	Copy   bool
	Opts   entities.WriteOptions
}

// ListCall records a single ListContents invocation.
type ListCall struct {
	Directory string
	Recursive bool
}

// SpyFilesystemRepository implements repositories.FilesystemRepository as a
// configurable spy backed by an in-memory file map.
type SpyFilesystemRepository struct {
	// --- state ---
	Files map[string]string // path -> contents

	// --- ListContents ---
	Listing   []entities.Metadata
	ListErr   error
	ListCalls []ListCall

	// --- reads ---
	ReadErr error

	// --- metadata queries ---
	Timestamp     *time.Time
	TimestampErr  error
	Visibility    entities.Visibility
	VisibilityErr error
	Mimetype      string

	// --- mutations ---
	WriteErr      error
	DeleteErr     error
	TransferErr   error
	Writes        []WriteCall
	CreatedDirs   []WriteCall
	Deletes       []DeleteCall
	Transfers     []TransferCall
	VisibilitySet []entities.Visibility
}

var _ repositories.FilesystemRepository = (*SpyFilesystemRepository)(nil)

func (s *SpyFilesystemRepository) Write(
	_ context.Context,
	filePath, contents string,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	s.Writes = append(s.Writes, WriteCall{Path: filePath, Contents: contents, Opts: opts})
	return s.store(filePath, contents)
}

func (s *SpyFilesystemRepository) WriteStream(
	ctx context.Context,
	filePath string,
	reader io.Reader,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return s.Write(ctx, filePath, string(data), opts)
}

func (s *SpyFilesystemRepository) Update(
	_ context.Context,
	filePath, contents string,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	s.Writes = append(s.Writes, WriteCall{Path: filePath, Contents: contents, Update: true, Opts: opts})
	if _, ok := s.Files[filePath]; !ok && s.WriteErr == nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrNotFound, filePath)
	}
	return s.store(filePath, contents)
}

func (s *SpyFilesystemRepository) UpdateStream(
	ctx context.Context,
	filePath string,
	reader io.Reader,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, filePath, string(data), opts)
}

func (s *SpyFilesystemRepository) Rename(
	_ context.Context,
	filePath, newPath string,
	opts entities.WriteOptions,
) error {
	s.Transfers = append(s.Transfers, TransferCall{Source: filePath, Target: newPath, Opts: opts})
	return s.TransferErr
}

func (s *SpyFilesystemRepository) Copy(
	_ context.Context,
	filePath, newPath string,
	opts entities.WriteOptions,
) error {
	s.Transfers = append(s.Transfers, TransferCall{Source: filePath, Target: newPath, Copy: true, Opts: opts})
	return s.TransferErr
}

func (s *SpyFilesystemRepository) Delete(_ context.Context, filePath string, opts entities.WriteOptions) error {
	s.Deletes = append(s.Deletes, DeleteCall{Path: filePath, Opts: opts})
	if s.DeleteErr == nil {
		delete(s.Files, filePath)
	}
	return s.DeleteErr
}

func (s *SpyFilesystemRepository) DeleteDir(_ context.Context, dirname string, opts entities.WriteOptions) error {
	s.Deletes = append(s.Deletes, DeleteCall{Path: dirname, Dir: true, Opts: opts})
	return s.DeleteErr
}

func (s *SpyFilesystemRepository) CreateDir(
	_ context.Context,
	dirname string,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	s.CreatedDirs = append(s.CreatedDirs, WriteCall{Path: dirname, Opts: opts})
	if s.WriteErr != nil {
		return nil, s.WriteErr
	}
	return &entities.Metadata{Type: entities.EntryDirectory, Path: dirname, Name: path.Base(dirname)}, nil
}

func (s *SpyFilesystemRepository) SetVisibility(
	_ context.Context,
	_ string,
	visibility entities.Visibility,
) (*entities.Metadata, error) {
	s.VisibilitySet = append(s.VisibilitySet, visibility)
	return nil, entities.ErrUnsupported
}

func (s *SpyFilesystemRepository) Has(_ context.Context, filePath string) (bool, error) {
	if s.ReadErr != nil {
		return false, s.ReadErr
	}
	_, ok := s.Files[filePath]
	return ok, nil
}

func (s *SpyFilesystemRepository) Read(ctx context.Context, filePath string) (*entities.Metadata, error) {
	record, err := s.GetMetadata(ctx, filePath)
	if err != nil {
		return nil, err
	}
	contents := s.Files[filePath]
	record.Contents = &contents
	return record, nil
}

func (s *SpyFilesystemRepository) ReadStream(ctx context.Context, filePath string) (*entities.Metadata, error) {
	record, err := s.GetMetadata(ctx, filePath)
	if err != nil {
		return nil, err
	}
	record.Stream = io.NopCloser(strings.NewReader(s.Files[filePath]))
	return record, nil
}

func (s *SpyFilesystemRepository) ListContents(
	_ context.Context,
	directory string,
	recursive bool,
) ([]entities.Metadata, error) {
	s.ListCalls = append(s.ListCalls, ListCall{Directory: directory, Recursive: recursive})
	return s.Listing, s.ListErr
}

func (s *SpyFilesystemRepository) GetMetadata(_ context.Context, filePath string) (*entities.Metadata, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	contents, ok := s.Files[filePath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrNotFound, filePath)
	}
	size := int64(len(contents))
	return &entities.Metadata{
		Type: entities.EntryFile,
		Path: filePath,
		Name: path.Base(filePath),
		Size: &size,
	}, nil
}

func (s *SpyFilesystemRepository) GetSize(ctx context.Context, filePath string) (*entities.Metadata, error) {
	return s.GetMetadata(ctx, filePath)
}

func (s *SpyFilesystemRepository) GetMimetype(ctx context.Context, filePath string) (*entities.Metadata, error) {
	record, err := s.GetMetadata(ctx, filePath)
	if err != nil {
		return nil, err
	}
	mimetype := s.Mimetype
	record.Mimetype = &mimetype
	return record, nil
}

func (s *SpyFilesystemRepository) GetTimestamp(_ context.Context, filePath string) (*entities.Metadata, error) {
	if s.TimestampErr != nil {
		return nil, s.TimestampErr
	}
	return &entities.Metadata{Path: filePath, Name: path.Base(filePath), Timestamp: s.Timestamp}, nil
}

func (s *SpyFilesystemRepository) GetVisibility(_ context.Context, filePath string) (*entities.Metadata, error) {
	if s.VisibilityErr != nil {
		return nil, s.VisibilityErr
	}
	visibility := s.Visibility
	return &entities.Metadata{Path: filePath, Name: path.Base(filePath), Visibility: &visibility}, nil
}

func (s *SpyFilesystemRepository) store(filePath, contents string) (*entities.Metadata, error) {
	if s.WriteErr != nil {
		return nil, s.WriteErr
	}
	if s.Files == nil {
		s.Files = make(map[string]string)
	}
	s.Files[filePath] = contents
	size := int64(len(contents))
	return &entities.Metadata{
		Type:     entities.EntryFile,
		Path:     filePath,
		Name:     path.Base(filePath),
		Size:     &size,
		Contents: &contents,
	}, nil
}
