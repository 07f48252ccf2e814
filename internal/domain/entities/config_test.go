//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "githubfs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveSecret(t *testing.T) {
	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		result := entities.ResolveSecret(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "ghp_abc123xyz"

		// when
		result := entities.ResolveSecret(raw)

		// then
		assert.Equal(t, "ghp_abc123xyz", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_GITHUBFS_SECRET", "my-secret-token")
		raw := "${TEST_GITHUBFS_SECRET}"

		// when
		result := entities.ResolveSecret(raw)

		// then
		assert.Equal(t, "my-secret-token", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "${DEFINITELY_NOT_SET_GITHUBFS_VAR}"

		// when
		result := entities.ResolveSecret(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should read secret from file when path exists", func(t *testing.T) {
		t.Parallel()

		// given
		tokenFile := filepath.Join(t.TempDir(), "token.key")
		require.NoError(t, os.WriteFile(tokenFile, []byte("  file-based-token  \n"), 0o600))

		// when
		result := entities.ResolveSecret(tokenFile)

		// then
		assert.Equal(t, "file-based-token", result)
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLoadConfig(t *testing.T) {
	t.Run("should load a complete configuration", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
provider: github
repository: octo/docs
branch: main
reference: v1.2.0
base_url: https://ghe.example.com/api/v3/
max_retries: 5
timeout: 10s
commit_message: "docs: sync"
committer:
  name: Octo Cat
  email: octo@example.com
credentials:
  method: basic
  login: octo
  secret: hunter2
`)

		// when
		cfg, err := entities.LoadConfig(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "github", cfg.Provider)
		assert.Equal(t, "octo/docs", cfg.Repository)
		assert.Equal(t, 5, cfg.Retries())
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.BaseURL)
		assert.Equal(t, entities.Credentials{Method: "basic", Login: "octo", Secret: "hunter2"}, cfg.Credentials)
	})

	t.Run("should apply defaults for omitted values", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GITHUB_TOKEN", "")
		path := writeConfig(t, "repository: octo/docs\n")

		// when
		cfg, err := entities.LoadConfig(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultProvider, cfg.Provider)
		assert.Equal(t, entities.DefaultMaxRetries, cfg.Retries())
		assert.Equal(t, entities.DefaultTimeout, cfg.Timeout)
		assert.True(t, cfg.Credentials.IsEmpty())
	})

	t.Run("should fall back to GITHUB_TOKEN when no credentials are configured", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GITHUB_TOKEN", "env-token")
		path := writeConfig(t, "repository: octo/docs\n")

		// when
		cfg, err := entities.LoadConfig(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.TokenCredentials("env-token"), cfg.Credentials)
	})

	t.Run("should expand environment variables in credentials", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_GITHUBFS_TOKEN", "expanded")
		path := writeConfig(t, `
repository: octo/docs
credentials:
  method: token
  login: ${TEST_GITHUBFS_TOKEN}
`)

		// when
		cfg, err := entities.LoadConfig(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "expanded", cfg.Credentials.Login)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		cfg, err := entities.LoadConfig(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "repository: [octo\n")

		// when
		_, err := entities.LoadConfig(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	negative := -1
	tests := []struct {
		name     string
		cfg      entities.Config
		contains string
	}{
		{
			name:     "should fail when repository is missing",
			cfg:      entities.Config{},
			contains: "repository is required",
		},
		{
			name:     "should fail when max_retries is negative",
			cfg:      entities.Config{Repository: "a/b", MaxRetries: &negative},
			contains: "max_retries",
		},
		{
			name:     "should fail on unknown credentials method",
			cfg:      entities.Config{Repository: "a/b", Credentials: entities.Credentials{Method: "ssh", Login: "x"}},
			contains: "unknown credentials method",
		},
		{
			name:     "should fail when basic credentials lack a secret",
			cfg:      entities.Config{Repository: "a/b", Credentials: entities.Credentials{Method: "basic", Login: "x"}},
			contains: "basic credentials",
		},
		{
			name:     "should fail when token credentials lack a token",
			cfg:      entities.Config{Repository: "a/b", Credentials: entities.Credentials{Method: "token"}},
			contains: "token credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			cfg := tt.cfg

			// when
			err := cfg.Validate()

			// then
			require.ErrorIs(t, err, entities.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestConfigSettings(t *testing.T) {
	t.Parallel()

	t.Run("should carry committer and message into settings", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := entities.Config{
			Repository:    "octo/docs",
			CommitMessage: "docs: sync",
			Committer:     entities.Committer{Name: "Octo", Email: "octo@example.com"},
		}

		// when
		settings, err := cfg.Settings()

		// then
		require.NoError(t, err)
		assert.Equal(t, "docs: sync", settings.CommitMessage())
		assert.Equal(t, &entities.Committer{Name: "Octo", Email: "octo@example.com"}, settings.Committer())
		assert.Equal(t, entities.DefaultBranch, settings.Branch())
	})

	t.Run("should reject a malformed repository", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := entities.Config{Repository: "octo"}

		// when
		_, err := cfg.Settings()

		// then
		require.ErrorIs(t, err, entities.ErrInvalidArgument)
	})

	t.Run("should override credentials with a token", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := entities.Config{
			Repository:  "octo/docs",
			Credentials: entities.Credentials{Method: "basic", Login: "u", Secret: "p"},
		}

		// when
		cfg.OverrideToken("cli-token")

		// then
		assert.Equal(t, entities.TokenCredentials("cli-token"), cfg.Credentials)
	})
}
