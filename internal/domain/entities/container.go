package entities

import (
	"go.uber.org/dig"
)

// ConfigLoader reads a configuration file into a validated Config.
type ConfigLoader func(path string) (*Config, error)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings themselves depend on the --config flag, so only the loader is provided here
	return container.Provide(func() ConfigLoader { return LoadConfig })
}
