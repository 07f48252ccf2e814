package controllers

import "github.com/rios0rios0/githubfs/internal/domain/entities"

// NewConfigResolverWithFinder builds a ConfigResolver with a custom config file lookup for testing.
func NewConfigResolverWithFinder(load entities.ConfigLoader, find func() (string, error)) *ConfigResolver {
	return &ConfigResolver{load: load, find: find}
}
