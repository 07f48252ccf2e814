//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// MetadataBuilder helps create listing records with a fluent interface.
type MetadataBuilder struct {
	*testkit.BaseBuilder
	entryType entities.EntryType
	filePath  string
	sha       string
	size      *int64
}

// NewMetadataBuilder creates a new metadata builder describing a small file.
func NewMetadataBuilder() *MetadataBuilder {
	size := int64(1)
	return &MetadataBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		entryType:   entities.EntryFile,
		filePath:    "README.md",
		sha:         "3b18e512dba79e4c8300dd08aeb37f8e728b8dad",
		size:        &size,
	}
}

// WithPath sets the entry path.
func (b *MetadataBuilder) WithPath(filePath string) *MetadataBuilder {
	b.filePath = filePath
	return b
}

// AsDirectory turns the entry into a directory without a size.
func (b *MetadataBuilder) AsDirectory() *MetadataBuilder {
	b.entryType = entities.EntryDirectory
	b.size = nil
	return b
}

// WithSize sets the entry size.
func (b *MetadataBuilder) WithSize(size int64) *MetadataBuilder {
	b.size = &size
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *MetadataBuilder) Build() interface{} {
	return b.BuildMetadata()
}

// BuildMetadata creates the record with a concrete return type.
func (b *MetadataBuilder) BuildMetadata() entities.Metadata {
	record := entities.Metadata{
		Type: b.entryType,
		Path: b.filePath,
		Name: path.Base(b.filePath),
		SHA:  b.sha,
	}
	if b.size != nil {
		size := *b.size
		record.Size = &size
	}
	return record
}
