package repositories

import (
	"go.uber.org/dig"

	ghRepo "github.com/rios0rios0/githubfs/internal/infrastructure/repositories/github"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() *FilesystemRegistry {
		reg := NewFilesystemRegistry()
		reg.Register("github", ghRepo.NewFilesystemRepository)
		return reg
	})
}
