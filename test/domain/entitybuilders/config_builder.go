//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// ConfigBuilder helps create test configurations with a fluent interface.
type ConfigBuilder struct {
	*testkit.BaseBuilder
	provider      string
	repository    string
	branch        string
	reference     string
	commitMessage string
	committer     entities.Committer
	credentials   entities.Credentials
	maxRetries    *int
}

// NewConfigBuilder creates a new config builder with sensible defaults.
func NewConfigBuilder() *ConfigBuilder {
	b := &ConfigBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

// WithProvider sets the backend name.
func (b *ConfigBuilder) WithProvider(provider string) *ConfigBuilder {
	b.provider = provider
	return b
}

// WithRepository sets the "owner/name" identifier.
func (b *ConfigBuilder) WithRepository(repository string) *ConfigBuilder {
	b.repository = repository
	return b
}

// WithBranch sets the branch writes are committed to.
func (b *ConfigBuilder) WithBranch(branch string) *ConfigBuilder {
	b.branch = branch
	return b
}

// WithReference sets the reference reads resolve against.
func (b *ConfigBuilder) WithReference(reference string) *ConfigBuilder {
	b.reference = reference
	return b
}

// WithCommitMessage sets the default commit message.
func (b *ConfigBuilder) WithCommitMessage(message string) *ConfigBuilder {
	b.commitMessage = message
	return b
}

// WithCommitter sets the default committer.
func (b *ConfigBuilder) WithCommitter(name, email string) *ConfigBuilder {
	b.committer = entities.Committer{Name: name, Email: email}
	return b
}

// WithCredentials sets the credentials.
func (b *ConfigBuilder) WithCredentials(credentials entities.Credentials) *ConfigBuilder {
	b.credentials = credentials
	return b
}

// WithMaxRetries sets the retry count.
func (b *ConfigBuilder) WithMaxRetries(retries int) *ConfigBuilder {
	b.maxRetries = &retries
	return b
}

// Build creates the config (satisfies testkit.Builder interface).
func (b *ConfigBuilder) Build() interface{} {
	return b.BuildConfig()
}

// BuildConfig creates the config with a concrete return type.
func (b *ConfigBuilder) BuildConfig() *entities.Config {
	return &entities.Config{
		Provider:      b.provider,
		Repository:    b.repository,
		Branch:        b.branch,
		Reference:     b.reference,
		MaxRetries:    b.maxRetries,
		Timeout:       time.Second,
		CommitMessage: b.commitMessage,
		Committer:     b.committer,
		Credentials:   b.credentials,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ConfigBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the ConfigBuilder.
func (b *ConfigBuilder) Clone() testkit.Builder {
	clone := *b
	clone.BaseBuilder = b.BaseBuilder.Clone().(*testkit.BaseBuilder)
	if b.maxRetries != nil {
		retries := *b.maxRetries
		clone.maxRetries = &retries
	}
	return &clone
}

func (b *ConfigBuilder) defaults() {
	b.provider = "github"
	b.repository = "foo/bar"
	b.branch = ""
	b.reference = ""
	b.commitMessage = ""
	b.committer = entities.Committer{}
	b.credentials = entities.TokenCredentials("test-token")
	b.maxRetries = nil
}
