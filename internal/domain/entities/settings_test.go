//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

const (
	mockRepositoryName = "foo/bar"
	mockBranch         = "mock_branch"
	mockReference      = "mock_reference"
)

func mockCredentials() entities.Credentials {
	return entities.Credentials{Method: entities.AuthMethodBasic, Login: "mock_user", Secret: "mock_password"}
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should contain the repository it was given", func(t *testing.T) {
		t.Parallel()

		// given
		repository := mockRepositoryName

		// when
		settings, err := entities.NewSettings(repository, mockCredentials(), mockBranch, mockReference)

		// then
		require.NoError(t, err)
		assert.Equal(t, mockRepositoryName, settings.Repository())
		assert.Equal(t, "foo", settings.Owner())
		assert.Equal(t, "bar", settings.Name())
	})

	t.Run("should only need a repository name", func(t *testing.T) {
		t.Parallel()

		// given
		repository := mockRepositoryName

		// when
		settings, err := entities.NewSettings(repository, entities.Credentials{}, "", "")

		// then
		require.NoError(t, err)
		assert.NotNil(t, settings)
	})

	t.Run("should contain empty credentials when given none", func(t *testing.T) {
		t.Parallel()

		// given
		repository := mockRepositoryName

		// when
		settings, err := entities.NewSettings(repository, entities.Credentials{}, "", "")

		// then
		require.NoError(t, err)
		assert.True(t, settings.Credentials().IsEmpty())
		assert.Equal(t, entities.Credentials{}, settings.Credentials())
	})

	t.Run("should contain the credentials it was given", func(t *testing.T) {
		t.Parallel()

		// given
		credentials := mockCredentials()

		// when
		settings, err := entities.NewSettings(mockRepositoryName, credentials, mockBranch, mockReference)

		// then
		require.NoError(t, err)
		assert.Equal(t, credentials, settings.Credentials())
	})

	t.Run("should default the branch to master", func(t *testing.T) {
		t.Parallel()

		// given
		branch := ""

		// when
		settings, err := entities.NewSettings(mockRepositoryName, entities.Credentials{}, branch, "")

		// then
		require.NoError(t, err)
		assert.Equal(t, "master", settings.Branch())
	})

	t.Run("should contain the branch it was given", func(t *testing.T) {
		t.Parallel()

		// given
		branch := mockBranch

		// when
		settings, err := entities.NewSettings(mockRepositoryName, entities.Credentials{}, branch, "")

		// then
		require.NoError(t, err)
		assert.Equal(t, mockBranch, settings.Branch())
	})

	t.Run("should default the reference to HEAD", func(t *testing.T) {
		t.Parallel()

		// given
		reference := ""

		// when
		settings, err := entities.NewSettings(mockRepositoryName, entities.Credentials{}, "", reference)

		// then
		require.NoError(t, err)
		assert.Equal(t, "HEAD", settings.Reference())
	})

	t.Run("should contain the reference it was given", func(t *testing.T) {
		t.Parallel()

		// given
		reference := mockReference

		// when
		settings, err := entities.NewSettings(mockRepositoryName, entities.Credentials{}, "", reference)

		// then
		require.NoError(t, err)
		assert.Equal(t, mockReference, settings.Reference())
	})

	invalidNames := []string{
		"",
		"foo",
		"/foo",
		"foo/",
		"/",
		"foo/bar/",
		"/foo/bar/",
		"foo/bar/baz",
		"/foo/bar/baz/",
		"foo/bar/baz/",
		"/foo/bar/baz",
	}
	for _, name := range invalidNames {
		t.Run("should complain when given invalid repository name "+name, func(t *testing.T) {
			t.Parallel()

			// given
			repository := name

			// when
			settings, err := entities.NewSettings(repository, entities.Credentials{}, "", "")

			// then
			require.Error(t, err)
			require.ErrorIs(t, err, entities.ErrInvalidArgument)
			assert.Nil(t, settings)
			assert.Contains(t, err.Error(), `"`+name+`"`)
		})
	}
}

func TestSettingsCopies(t *testing.T) {
	t.Parallel()

	t.Run("should leave the original untouched when adding a committer", func(t *testing.T) {
		t.Parallel()

		// given
		settings, err := entities.NewSettings(mockRepositoryName, entities.Credentials{}, "", "")
		require.NoError(t, err)

		// when
		withCommitter := settings.WithCommitter(entities.Committer{Name: "Jane", Email: "jane@example.com"})

		// then
		assert.Nil(t, settings.Committer())
		require.NotNil(t, withCommitter.Committer())
		assert.Equal(t, "Jane", withCommitter.Committer().Name)
		assert.Equal(t, settings.Repository(), withCommitter.Repository())
	})

	t.Run("should leave the original untouched when adding a commit message", func(t *testing.T) {
		t.Parallel()

		// given
		settings, err := entities.NewSettings(mockRepositoryName, entities.Credentials{}, "", "")
		require.NoError(t, err)

		// when
		withMessage := settings.WithCommitMessage("docs: sync")

		// then
		assert.Empty(t, settings.CommitMessage())
		assert.Equal(t, "docs: sync", withMessage.CommitMessage())
	})

	t.Run("should not expose the stored committer for mutation", func(t *testing.T) {
		t.Parallel()

		// given
		settings, err := entities.NewSettings(mockRepositoryName, entities.Credentials{}, "", "")
		require.NoError(t, err)
		settings = settings.WithCommitter(entities.Committer{Name: "Jane"})

		// when
		settings.Committer().Name = "Mallory"

		// then
		assert.Equal(t, "Jane", settings.Committer().Name)
	})
}
