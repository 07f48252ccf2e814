package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
)

// treeEditor derives the entries of a new tree from the branch's current tree.
// An entry with neither SHA nor Content removes its path.
type treeEditor func(tree *gh.Tree) ([]*gh.TreeEntry, error)

// Rename moves every blob at or below filePath to newPath in a single commit.
func (r *GitHubFilesystemRepository) Rename(
	ctx context.Context,
	filePath, newPath string,
	opts entities.WriteOptions,
) error {
	source, target, err := movePaths(filePath, newPath)
	if err != nil {
		return err
	}
	message := r.commitMessage("Rename", source+" to "+target, opts)
	return r.commitTree(ctx, message, opts, func(tree *gh.Tree) ([]*gh.TreeEntry, error) {
		return relocate(tree, source, target, false)
	})
}

// Copy duplicates every blob at or below filePath under newPath in a single commit.
// The blobs are shared, no content is transferred.
func (r *GitHubFilesystemRepository) Copy(
	ctx context.Context,
	filePath, newPath string,
	opts entities.WriteOptions,
) error {
	source, target, err := movePaths(filePath, newPath)
	if err != nil {
		return err
	}
	message := r.commitMessage("Copy", source+" to "+target, opts)
	return r.commitTree(ctx, message, opts, func(tree *gh.Tree) ([]*gh.TreeEntry, error) {
		return relocate(tree, source, target, true)
	})
}

// DeleteDir removes every blob below dirname in a single commit.
func (r *GitHubFilesystemRepository) DeleteDir(
	ctx context.Context,
	dirname string,
	opts entities.WriteOptions,
) error {
	dirname = cleanPath(dirname)
	if dirname == "" {
		return fmt.Errorf("%w: refusing to delete the repository root", entities.ErrInvalidArgument)
	}
	message := r.commitMessage("Delete directory", dirname, opts)
	return r.commitTree(ctx, message, opts, func(tree *gh.Tree) ([]*gh.TreeEntry, error) {
		var changes []*gh.TreeEntry
		for _, entry := range tree.Entries {
			if entry.GetType() != treeTypeBlob || entry.GetPath() == dirname || !isBelow(entry.GetPath(), dirname) {
				continue
			}
			changes = append(changes, removal(entry))
		}
		if len(changes) == 0 {
			return nil, fmt.Errorf("%w: directory %q", entities.ErrNotFound, dirname)
		}
		return changes, nil
	})
}

// commitTree runs the git-data round trip: read the branch head, edit its
// tree, commit the result and fast-forward the branch to it.
func (r *GitHubFilesystemRepository) commitTree(
	ctx context.Context,
	message string,
	opts entities.WriteOptions,
	edit treeEditor,
) error {
	owner := r.settings.Owner()
	repoName := r.settings.Name()
	branchRef := "refs/heads/" + r.settings.Branch()
	r.log("", branchRef).WithField("message", message).Debug("Committing tree changes")

	baseRef, _, err := r.client.Git.GetRef(ctx, owner, repoName, branchRef)
	if err != nil {
		return fmt.Errorf("failed to get branch ref: %w", err)
	}
	baseSHA := baseRef.GetObject().GetSHA()

	baseCommit, _, err := r.client.Git.GetCommit(ctx, owner, repoName, baseSHA)
	if err != nil {
		return fmt.Errorf("failed to get base commit: %w", err)
	}
	baseTreeSHA := baseCommit.GetTree().GetSHA()

	baseTree, _, err := r.client.Git.GetTree(ctx, owner, repoName, baseTreeSHA, true)
	if err != nil {
		return fmt.Errorf("failed to get base tree: %w", err)
	}
	if baseTree.GetTruncated() {
		return fmt.Errorf("%w: tree of %s is too large to edit in one request", entities.ErrUnsupported, branchRef)
	}

	entries, err := edit(baseTree)
	if err != nil {
		return err
	}

	newTree, _, err := r.client.Git.CreateTree(ctx, owner, repoName, baseTreeSHA, entries)
	if err != nil {
		return fmt.Errorf("failed to create tree: %w", err)
	}

	commit := &gh.Commit{
		Message: &message,
		Tree:    newTree,
		Parents: []*gh.Commit{{SHA: &baseSHA}},
	}
	if committer := r.committer(opts); committer != nil {
		commit.Author = committer
		commit.Committer = committer
	}
	newCommit, _, err := r.client.Git.CreateCommit(ctx, owner, repoName, commit, nil)
	if err != nil {
		return fmt.Errorf("failed to create commit: %w", err)
	}

	_, _, err = r.client.Git.UpdateRef(
		ctx, owner, repoName,
		&gh.Reference{
			Ref:    &branchRef,
			Object: &gh.GitObject{SHA: newCommit.SHA},
		},
		false,
	)
	if err != nil {
		return fmt.Errorf("failed to update branch ref: %w", err)
	}
	return nil
}

// relocate points every blob at or below source to the same place under
// target, optionally removing the originals.
func relocate(tree *gh.Tree, source, target string, keepSource bool) ([]*gh.TreeEntry, error) {
	var changes []*gh.TreeEntry
	for _, entry := range tree.Entries {
		if entry.GetType() != treeTypeBlob || !isBelow(entry.GetPath(), source) {
			continue
		}
		destination := target + entry.GetPath()[len(source):]
		changes = append(changes, &gh.TreeEntry{
			Path: gh.String(destination),
			Mode: entry.Mode,
			Type: entry.Type,
			SHA:  entry.SHA,
		})
		if !keepSource {
			changes = append(changes, removal(entry))
		}
	}
	if len(changes) == 0 {
		return nil, fmt.Errorf("%w: %q", entities.ErrNotFound, source)
	}
	return changes, nil
}

func removal(entry *gh.TreeEntry) *gh.TreeEntry {
	return &gh.TreeEntry{
		Path: entry.Path,
		Mode: entry.Mode,
		Type: entry.Type,
	}
}

func movePaths(filePath, newPath string) (string, string, error) {
	source := cleanPath(filePath)
	target := cleanPath(newPath)
	switch {
	case source == "" || target == "":
		return "", "", fmt.Errorf("%w: the repository root cannot be moved or copied", entities.ErrInvalidArgument)
	case isBelow(target, source):
		return "", "", fmt.Errorf("%w: %q lies inside %q", entities.ErrInvalidArgument, target, source)
	}
	return source, target, nil
}
