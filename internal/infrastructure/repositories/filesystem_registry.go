package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	domainRepos "github.com/rios0rios0/githubfs/internal/domain/repositories"
	ghRepo "github.com/rios0rios0/githubfs/internal/infrastructure/repositories/github"
)

// FilesystemFactory builds a FilesystemRepository for the given settings.
type FilesystemFactory func(
	settings *entities.Settings,
	opts ghRepo.ClientOptions,
) (domainRepos.FilesystemRepository, error)

// FilesystemRegistry manages all registered filesystem backends.
type FilesystemRegistry struct {
	factories map[string]FilesystemFactory
}

// NewFilesystemRegistry creates an empty filesystem registry.
func NewFilesystemRegistry() *FilesystemRegistry {
	return &FilesystemRegistry{
		factories: make(map[string]FilesystemFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "github").
func (r *FilesystemRegistry) Register(name string, factory FilesystemFactory) {
	r.factories[name] = factory
}

// Get returns a backend configured for the given settings.
func (r *FilesystemRegistry) Get(
	name string,
	settings *entities.Settings,
	opts ghRepo.ClientOptions,
) (domainRepos.FilesystemRepository, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q", name)
	}
	backend, err := factory(settings, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider %q: %w", name, err)
	}
	return backend, nil
}

// Names returns the sorted list of registered backend names.
func (r *FilesystemRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
