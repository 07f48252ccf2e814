package github

import (
	"path"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

const (
	contentTypeFile = "file"
	contentTypeDir  = "dir"
	treeTypeBlob    = "blob"
	treeTypeTree    = "tree"
)

// normalizeContent reshapes a contents API record. Only what the response
// carries is filled in.
func normalizeContent(content *gh.RepositoryContent) entities.Metadata {
	record := entities.Metadata{
		Type: contentEntryType(content.GetType()),
		Path: content.GetPath(),
		Name: content.GetName(),
		SHA:  content.GetSHA(),
		URL:  content.GetURL(),
	}
	if content.Size != nil {
		size := int64(content.GetSize())
		record.Size = &size
	}
	return record
}

// normalizeTreeEntry reshapes a git-data tree entry, re-labeling blob and tree
// kinds as file and dir.
func normalizeTreeEntry(entry *gh.TreeEntry) entities.Metadata {
	record := entities.Metadata{
		Type: treeEntryType(entry.GetType()),
		Path: entry.GetPath(),
		Name: path.Base(entry.GetPath()),
		SHA:  entry.GetSHA(),
		Mode: entry.GetMode(),
		URL:  entry.GetURL(),
	}
	if entry.Size != nil {
		size := int64(entry.GetSize())
		record.Size = &size
	}
	return record
}

// normalizeListing marks the fields a listing cannot supply as absent and
// stamps every record with the repository-wide visibility.
func normalizeListing(records []entities.Metadata, visibility entities.Visibility) []entities.Metadata {
	for i := range records {
		v := visibility
		records[i].Contents = nil
		records[i].Stream = nil
		records[i].Timestamp = nil
		records[i].Visibility = &v
	}
	return records
}

func contentEntryType(kind string) entities.EntryType {
	switch kind {
	case contentTypeFile:
		return entities.EntryFile
	case contentTypeDir:
		return entities.EntryDirectory
	default:
		return entities.EntryType(kind)
	}
}

func treeEntryType(kind string) entities.EntryType {
	switch kind {
	case treeTypeBlob:
		return entities.EntryFile
	case treeTypeTree:
		return entities.EntryDirectory
	default:
		return entities.EntryType(kind)
	}
}

// cleanPath turns any user-supplied path into the slash-free relative form
// the GitHub APIs expect; the repository root becomes "".
func cleanPath(p string) string {
	return strings.Trim(path.Clean("/"+p), "/")
}

// isBelow reports whether candidate is dir itself or lies underneath it.
// Every path is below the root.
func isBelow(candidate, dir string) bool {
	return dir == "" || candidate == dir || strings.HasPrefix(candidate, dir+"/")
}
