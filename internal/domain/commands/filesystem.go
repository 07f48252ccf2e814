package commands

import (
	"github.com/rios0rios0/githubfs/internal/domain/entities"
	"github.com/rios0rios0/githubfs/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/githubfs/internal/infrastructure/repositories"
	ghRepo "github.com/rios0rios0/githubfs/internal/infrastructure/repositories/github"
)

// openFilesystem resolves the configured backend for a single invocation.
func openFilesystem(
	registry *infraRepos.FilesystemRegistry,
	cfg *entities.Config,
) (repositories.FilesystemRepository, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	return registry.Get(cfg.Provider, settings, ghRepo.ClientOptions{
		BaseURL:    cfg.BaseURL,
		MaxRetries: cfg.Retries(),
		Timeout:    cfg.Timeout,
	})
}
