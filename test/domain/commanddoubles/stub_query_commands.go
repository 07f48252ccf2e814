//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/rios0rios0/githubfs/internal/domain/commands"
	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Records          []entities.Metadata
	LastConfig       *entities.Config
	LastOpts         commands.ListOptions
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	cfg *entities.Config,
	opts commands.ListOptions,
) ([]entities.Metadata, error) {
	s.ExecuteCallCount++
	s.LastConfig = cfg
	s.LastOpts = opts
	return s.Records, s.ExecuteErr
}

// StubReadCommand is a stub implementation of commands.Read.
type StubReadCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Contents         string
	LastConfig       *entities.Config
	LastPath         string
}

var _ commands.Read = (*StubReadCommand)(nil)

func (s *StubReadCommand) Execute(_ context.Context, cfg *entities.Config, filePath string, out io.Writer) error {
	s.ExecuteCallCount++
	s.LastConfig = cfg
	s.LastPath = filePath
	if s.ExecuteErr != nil {
		return s.ExecuteErr
	}
	_, err := io.WriteString(out, s.Contents)
	return err
}

// StubStatCommand is a stub implementation of commands.Stat.
type StubStatCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Record           *entities.Metadata
	LastPath         string
}

var _ commands.Stat = (*StubStatCommand)(nil)

func (s *StubStatCommand) Execute(_ context.Context, _ *entities.Config, filePath string) (*entities.Metadata, error) {
	s.ExecuteCallCount++
	s.LastPath = filePath
	return s.Record, s.ExecuteErr
}
