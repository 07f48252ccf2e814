//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"
	"path"

	"github.com/rios0rios0/githubfs/internal/domain/commands"
	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// StubPutCommand is a stub implementation of commands.Put. It drains the
// reader so tests can inspect what would have been uploaded.
type StubPutCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.PutOptions
	Uploaded         string
}

var _ commands.Put = (*StubPutCommand)(nil)

func (s *StubPutCommand) Execute(
	_ context.Context,
	_ *entities.Config,
	opts commands.PutOptions,
) (*entities.Metadata, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	data, err := io.ReadAll(opts.Reader)
	if err != nil {
		return nil, err
	}
	s.Uploaded = string(data)
	return &entities.Metadata{
		Type: entities.EntryFile,
		Path: opts.Path,
		Name: path.Base(opts.Path),
		SHA:  "stub-sha",
	}, nil
}

// StubRemoveCommand is a stub implementation of commands.Remove.
type StubRemoveCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.RemoveOptions
}

var _ commands.Remove = (*StubRemoveCommand)(nil)

func (s *StubRemoveCommand) Execute(_ context.Context, _ *entities.Config, opts commands.RemoveOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubMakeDirCommand is a stub implementation of commands.MakeDir.
type StubMakeDirCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastDir          string
	LastMessage      string
}

var _ commands.MakeDir = (*StubMakeDirCommand)(nil)

func (s *StubMakeDirCommand) Execute(
	_ context.Context,
	_ *entities.Config,
	dirname, message string,
) (*entities.Metadata, error) {
	s.ExecuteCallCount++
	s.LastDir = dirname
	s.LastMessage = message
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return &entities.Metadata{Type: entities.EntryDirectory, Path: dirname}, nil
}

// StubTransferCommand is a stub implementation of both commands.Move and commands.Copy.
type StubTransferCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.TransferOptions
}

var (
	_ commands.Move = (*StubTransferCommand)(nil)
	_ commands.Copy = (*StubTransferCommand)(nil)
)

func (s *StubTransferCommand) Execute(_ context.Context, _ *entities.Config, opts commands.TransferOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
