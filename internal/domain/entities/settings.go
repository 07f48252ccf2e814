package entities

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultBranch is the branch writes are committed to when none is given.
	DefaultBranch = "master"
	// DefaultReference is the git reference reads are pinned to when none is given.
	DefaultReference = "HEAD"
)

// repositoryPattern accepts exactly one slash-delimited "owner/name" pair.
var repositoryPattern = regexp.MustCompile(`^[^/]+/[^/]+$`)

// Settings identifies the remote repository an adapter operates on and the
// branch and reference used for writes and reads respectively.
// It is immutable: the With* methods return modified copies.
type Settings struct {
	repository    string
	owner         string
	name          string
	credentials   Credentials
	branch        string
	reference     string
	committer     *Committer
	commitMessage string
}

// NewSettings validates the repository identifier and fills in defaults for
// an empty branch or reference.
func NewSettings(repository string, credentials Credentials, branch, reference string) (*Settings, error) {
	if !repositoryPattern.MatchString(repository) {
		return nil, fmt.Errorf(
			"%w: given repository name %q should be in the format of \"owner/name\"",
			ErrInvalidArgument, repository,
		)
	}

	if branch == "" {
		branch = DefaultBranch
	}
	if reference == "" {
		reference = DefaultReference
	}

	owner, name, _ := strings.Cut(repository, "/")
	return &Settings{
		repository:  repository,
		owner:       owner,
		name:        name,
		credentials: credentials,
		branch:      branch,
		reference:   reference,
	}, nil
}

// Repository returns the "owner/name" identifier as given.
func (s *Settings) Repository() string { return s.repository }

// Owner returns the user or organization part of the identifier.
func (s *Settings) Owner() string { return s.owner }

// Name returns the repository part of the identifier.
func (s *Settings) Name() string { return s.name }

// Credentials returns the configured credentials, possibly empty.
func (s *Settings) Credentials() Credentials { return s.credentials }

// Branch returns the branch writes are committed to.
func (s *Settings) Branch() string { return s.branch }

// Reference returns the git reference reads are pinned to.
func (s *Settings) Reference() string { return s.reference }

// Committer returns the default committer, or nil when GitHub should attribute
// commits to the authenticated user.
func (s *Settings) Committer() *Committer {
	if s.committer == nil {
		return nil
	}
	c := *s.committer
	return &c
}

// CommitMessage returns the default commit message, possibly empty.
func (s *Settings) CommitMessage() string { return s.commitMessage }

// WithCommitter returns a copy of the settings using the given default committer.
func (s *Settings) WithCommitter(committer Committer) *Settings {
	clone := *s
	clone.committer = &committer
	return &clone
}

// WithCommitMessage returns a copy of the settings using the given default commit message.
func (s *Settings) WithCommitMessage(message string) *Settings {
	clone := *s
	clone.commitMessage = message
	return &clone
}

// WithCredentials returns a copy of the settings using the given credentials.
func (s *Settings) WithCredentials(credentials Credentials) *Settings {
	clone := *s
	clone.credentials = credentials
	return &clone
}
