package entities

import (
	"io"
	"time"
)

// EntryType distinguishes files from directories in a Metadata record.
type EntryType string

const (
	EntryFile      EntryType = "file"
	EntryDirectory EntryType = "dir"
)

// Visibility is the access level of an entry.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Metadata is the record returned by every filesystem operation.
//
// Name, SHA, Mode and URL are copied from the remote response when it carries
// them. The pointer fields and Stream are nil whenever the backend could not
// supply the value for the call that produced the record; they are never
// silently defaulted, and they serialize as explicit nulls.
type Metadata struct {
	Type EntryType `yaml:"type"`
	Path string    `yaml:"path"`
	Name string    `yaml:"name,omitempty"`
	SHA  string    `yaml:"sha,omitempty"`
	Mode string    `yaml:"mode,omitempty"`
	URL  string    `yaml:"url,omitempty"`

	Contents   *string       `yaml:"contents"`
	Stream     io.ReadCloser `yaml:"-"`
	Visibility *Visibility   `yaml:"visibility"`
	Timestamp  *time.Time    `yaml:"timestamp"`
	Size       *int64        `yaml:"size"`
	Mimetype   *string       `yaml:"mimetype"`
}

// IsDir reports whether the record describes a directory.
func (m Metadata) IsDir() bool {
	return m.Type == EntryDirectory
}

// WriteOptions carries per-call overrides for operations that create commits.
type WriteOptions struct {
	Message   string
	Committer *Committer
}
