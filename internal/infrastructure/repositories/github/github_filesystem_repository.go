package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/githubfs/internal/domain/entities"
	"github.com/rios0rios0/githubfs/internal/domain/repositories"
)

const (
	providerName = "github"
	// encodingNone is what the contents API reports for files too large to inline.
	encodingNone = "none"
	// placeholderName keeps otherwise empty directories alive, git cannot store them.
	placeholderName = ".gitkeep"
)

// GitHubFilesystemRepository implements repositories.FilesystemRepository on top
// of the GitHub contents and git-data APIs. Reads are pinned to the configured
// reference, writes are committed to the configured branch.
type GitHubFilesystemRepository struct {
	client   *gh.Client
	settings *entities.Settings

	visibilityMu sync.Mutex
	visibility   *entities.Visibility
}

var _ repositories.FilesystemRepository = (*GitHubFilesystemRepository)(nil)

// NewFilesystemRepository builds the HTTP client for the settings' credentials
// and returns an adapter using it.
func NewFilesystemRepository(
	settings *entities.Settings,
	opts ClientOptions,
) (repositories.FilesystemRepository, error) {
	client, err := NewClient(settings.Credentials(), opts)
	if err != nil {
		return nil, err
	}
	return NewGitHubFilesystemRepository(client, settings), nil
}

// NewGitHubFilesystemRepository wraps an already configured go-github client.
func NewGitHubFilesystemRepository(client *gh.Client, settings *entities.Settings) *GitHubFilesystemRepository {
	return &GitHubFilesystemRepository{
		client:   client,
		settings: settings,
	}
}

// Name returns the provider identifier.
func (r *GitHubFilesystemRepository) Name() string { return providerName }

func (r *GitHubFilesystemRepository) Write(
	ctx context.Context,
	filePath, contents string,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	filePath = cleanPath(filePath)
	r.log(filePath, r.settings.Branch()).Debug("Creating file")

	response, _, err := r.client.Repositories.CreateFile(
		ctx, r.settings.Owner(), r.settings.Name(), filePath,
		r.fileOptions("Create", filePath, []byte(contents), "", opts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %q: %w", filePath, err)
	}

	record := writtenRecord(response, filePath)
	record.Contents = &contents
	return record, nil
}

func (r *GitHubFilesystemRepository) WriteStream(
	ctx context.Context,
	filePath string,
	reader io.Reader,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream for %q: %w", filePath, err)
	}
	return r.Write(ctx, filePath, string(data), opts)
}

func (r *GitHubFilesystemRepository) Update(
	ctx context.Context,
	filePath, contents string,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	filePath = cleanPath(filePath)
	current, err := r.currentFile(ctx, filePath)
	if err != nil {
		return nil, err
	}

	r.log(filePath, r.settings.Branch()).WithField("sha", current.SHA).Debug("Updating file")
	response, _, err := r.client.Repositories.UpdateFile(
		ctx, r.settings.Owner(), r.settings.Name(), filePath,
		r.fileOptions("Update", filePath, []byte(contents), current.SHA, opts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update file %q: %w", filePath, err)
	}

	record := writtenRecord(response, filePath)
	record.Contents = &contents
	return record, nil
}

func (r *GitHubFilesystemRepository) UpdateStream(
	ctx context.Context,
	filePath string,
	reader io.Reader,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream for %q: %w", filePath, err)
	}
	return r.Update(ctx, filePath, string(data), opts)
}

func (r *GitHubFilesystemRepository) Delete(
	ctx context.Context,
	filePath string,
	opts entities.WriteOptions,
) error {
	filePath = cleanPath(filePath)
	current, err := r.currentFile(ctx, filePath)
	if err != nil {
		return err
	}

	r.log(filePath, r.settings.Branch()).WithField("sha", current.SHA).Debug("Deleting file")
	_, _, err = r.client.Repositories.DeleteFile(
		ctx, r.settings.Owner(), r.settings.Name(), filePath,
		r.fileOptions("Delete", filePath, nil, current.SHA, opts),
	)
	if err != nil {
		return fmt.Errorf("failed to delete file %q: %w", filePath, err)
	}
	return nil
}

func (r *GitHubFilesystemRepository) CreateDir(
	ctx context.Context,
	dirname string,
	opts entities.WriteOptions,
) (*entities.Metadata, error) {
	dirname = cleanPath(dirname)
	if dirname == "" {
		return nil, fmt.Errorf("%w: cannot create the repository root", entities.ErrInvalidArgument)
	}
	if opts.Message == "" && r.settings.CommitMessage() == "" {
		opts.Message = "Create directory " + dirname
	}

	if _, err := r.Write(ctx, path.Join(dirname, placeholderName), "", opts); err != nil {
		return nil, err
	}
	return &entities.Metadata{
		Type: entities.EntryDirectory,
		Path: dirname,
		Name: path.Base(dirname),
	}, nil
}

// SetVisibility always fails: GitHub governs visibility per repository, not per entry.
func (r *GitHubFilesystemRepository) SetVisibility(
	_ context.Context,
	filePath string,
	visibility entities.Visibility,
) (*entities.Metadata, error) {
	return nil, fmt.Errorf(
		"%w: cannot set visibility of %q to %q, it is a repository-wide setting",
		entities.ErrUnsupported, filePath, visibility,
	)
}

func (r *GitHubFilesystemRepository) Has(ctx context.Context, filePath string) (bool, error) {
	filePath = cleanPath(filePath)
	r.log(filePath, r.settings.Reference()).Debug("Checking existence")

	_, _, _, err := r.client.Repositories.GetContents(
		ctx, r.settings.Owner(), r.settings.Name(), filePath, r.readOptions(),
	)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check %q: %w", filePath, err)
	}
	return true, nil
}

func (r *GitHubFilesystemRepository) Read(ctx context.Context, filePath string) (*entities.Metadata, error) {
	filePath = cleanPath(filePath)
	r.log(filePath, r.settings.Reference()).Debug("Reading file")

	file, _, _, err := r.client.Repositories.GetContents(
		ctx, r.settings.Owner(), r.settings.Name(), filePath, r.readOptions(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get file %q: %w", filePath, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: %q is a directory", entities.ErrNotAFile, filePath)
	}

	var contents string
	if file.GetEncoding() == encodingNone {
		contents, err = r.download(ctx, filePath)
	} else {
		contents, err = file.GetContent()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode file content of %q: %w", filePath, err)
	}

	record := normalizeContent(file)
	record.Contents = &contents
	return &record, nil
}

func (r *GitHubFilesystemRepository) ReadStream(ctx context.Context, filePath string) (*entities.Metadata, error) {
	filePath = cleanPath(filePath)
	r.log(filePath, r.settings.Reference()).Debug("Opening file stream")

	stream, _, err := r.client.Repositories.DownloadContents(
		ctx, r.settings.Owner(), r.settings.Name(), filePath, r.readOptions(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to download file %q: %w", filePath, err)
	}
	return &entities.Metadata{
		Type:   entities.EntryFile,
		Path:   filePath,
		Name:   path.Base(filePath),
		Stream: stream,
	}, nil
}

func (r *GitHubFilesystemRepository) ListContents(
	ctx context.Context,
	directory string,
	recursive bool,
) ([]entities.Metadata, error) {
	directory = cleanPath(directory)

	var records []entities.Metadata
	var err error
	if recursive {
		records, err = r.listTree(ctx, directory)
	} else {
		records, err = r.listDirectory(ctx, directory)
	}
	if err != nil {
		return nil, err
	}

	visibility, err := r.repositoryVisibility(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeListing(records, visibility), nil
}

func (r *GitHubFilesystemRepository) GetMetadata(ctx context.Context, filePath string) (*entities.Metadata, error) {
	filePath = cleanPath(filePath)
	r.log(filePath, r.settings.Reference()).Debug("Fetching metadata")

	file, _, _, err := r.client.Repositories.GetContents(
		ctx, r.settings.Owner(), r.settings.Name(), filePath, r.readOptions(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata of %q: %w", filePath, err)
	}
	if file == nil {
		return &entities.Metadata{
			Type: entities.EntryDirectory,
			Path: filePath,
			Name: path.Base(filePath),
		}, nil
	}

	record := normalizeContent(file)
	return &record, nil
}

func (r *GitHubFilesystemRepository) GetSize(ctx context.Context, filePath string) (*entities.Metadata, error) {
	record, err := r.GetMetadata(ctx, filePath)
	if err != nil {
		return nil, err
	}
	if record.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory and has no size", entities.ErrNotAFile, record.Path)
	}
	return record, nil
}

func (r *GitHubFilesystemRepository) GetMimetype(ctx context.Context, filePath string) (*entities.Metadata, error) {
	record, err := r.Read(ctx, filePath)
	if err != nil {
		return nil, err
	}

	detected := mimetype.Detect([]byte(*record.Contents)).String()
	record.Mimetype = &detected
	return record, nil
}

// GetTimestamp reports the committer date of the newest commit touching the path.
func (r *GitHubFilesystemRepository) GetTimestamp(ctx context.Context, filePath string) (*entities.Metadata, error) {
	filePath = cleanPath(filePath)
	r.log(filePath, r.settings.Reference()).Debug("Fetching last commit")

	commits, _, err := r.client.Repositories.ListCommits(
		ctx, r.settings.Owner(), r.settings.Name(),
		&gh.CommitsListOptions{
			SHA:         r.settings.Reference(),
			Path:        filePath,
			ListOptions: gh.ListOptions{PerPage: 1},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits for %q: %w", filePath, err)
	}
	if len(commits) == 0 {
		return nil, fmt.Errorf("%w: no commits touch %q", entities.ErrNotFound, filePath)
	}

	timestamp := commits[0].GetCommit().GetCommitter().GetDate().Time
	return &entities.Metadata{
		Path:      filePath,
		Name:      path.Base(filePath),
		Timestamp: &timestamp,
	}, nil
}

// GetVisibility reports the repository visibility: GitHub has no per-entry setting.
func (r *GitHubFilesystemRepository) GetVisibility(ctx context.Context, filePath string) (*entities.Metadata, error) {
	visibility, err := r.repositoryVisibility(ctx)
	if err != nil {
		return nil, err
	}
	filePath = cleanPath(filePath)
	return &entities.Metadata{
		Path:       filePath,
		Name:       path.Base(filePath),
		Visibility: &visibility,
	}, nil
}

// repositoryVisibility looks the repository up once per adapter; failures are not memoized.
func (r *GitHubFilesystemRepository) repositoryVisibility(ctx context.Context) (entities.Visibility, error) {
	r.visibilityMu.Lock()
	defer r.visibilityMu.Unlock()

	if r.visibility != nil {
		return *r.visibility, nil
	}

	repo, _, err := r.client.Repositories.Get(ctx, r.settings.Owner(), r.settings.Name())
	if err != nil {
		return "", fmt.Errorf("failed to get repository %q: %w", r.settings.Repository(), err)
	}

	visibility := entities.VisibilityPublic
	if repo.GetPrivate() {
		visibility = entities.VisibilityPrivate
	}
	r.visibility = &visibility
	return visibility, nil
}

func (r *GitHubFilesystemRepository) listDirectory(ctx context.Context, directory string) ([]entities.Metadata, error) {
	r.log(directory, r.settings.Reference()).Debug("Listing directory")

	file, entries, _, err := r.client.Repositories.GetContents(
		ctx, r.settings.Owner(), r.settings.Name(), directory, r.readOptions(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", directory, err)
	}
	if file != nil {
		entries = []*gh.RepositoryContent{file}
	}

	records := make([]entities.Metadata, 0, len(entries))
	for _, entry := range entries {
		records = append(records, normalizeContent(entry))
	}
	return records, nil
}

func (r *GitHubFilesystemRepository) listTree(ctx context.Context, directory string) ([]entities.Metadata, error) {
	r.log(directory, r.settings.Reference()).Debug("Listing tree recursively")

	tree, _, err := r.client.Git.GetTree(
		ctx, r.settings.Owner(), r.settings.Name(), r.settings.Reference(), true,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get repo tree: %w", err)
	}
	if tree.GetTruncated() {
		r.log(directory, r.settings.Reference()).Warn("Tree listing was truncated by GitHub, results are incomplete")
	}

	found := directory == ""
	records := make([]entities.Metadata, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		if !isBelow(entry.GetPath(), directory) {
			continue
		}
		found = true
		if entry.GetPath() == directory {
			continue
		}
		records = append(records, normalizeTreeEntry(entry))
	}
	if !found {
		return nil, fmt.Errorf("%w: directory %q at %s", entities.ErrNotFound, directory, r.settings.Reference())
	}
	return records, nil
}

// currentFile fetches the blob SHA the contents API requires to update or
// delete a file. It is read from the branch being written, not the reference.
func (r *GitHubFilesystemRepository) currentFile(ctx context.Context, filePath string) (*entities.Metadata, error) {
	r.log(filePath, r.settings.Branch()).Debug("Fetching current blob")

	file, _, _, err := r.client.Repositories.GetContents(
		ctx, r.settings.Owner(), r.settings.Name(), filePath,
		&gh.RepositoryContentGetOptions{Ref: r.settings.Branch()},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get current file %q on %s: %w", filePath, r.settings.Branch(), err)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: %q is a directory", entities.ErrNotAFile, filePath)
	}

	current := normalizeContent(file)
	return &current, nil
}

func (r *GitHubFilesystemRepository) download(ctx context.Context, filePath string) (string, error) {
	stream, _, err := r.client.Repositories.DownloadContents(
		ctx, r.settings.Owner(), r.settings.Name(), filePath, r.readOptions(),
	)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *GitHubFilesystemRepository) readOptions() *gh.RepositoryContentGetOptions {
	return &gh.RepositoryContentGetOptions{Ref: r.settings.Reference()}
}

func (r *GitHubFilesystemRepository) fileOptions(
	verb, filePath string,
	content []byte,
	sha string,
	opts entities.WriteOptions,
) *gh.RepositoryContentFileOptions {
	options := &gh.RepositoryContentFileOptions{
		Message:   gh.String(r.commitMessage(verb, filePath, opts)),
		Content:   content,
		Branch:    gh.String(r.settings.Branch()),
		Committer: r.committer(opts),
	}
	if sha != "" {
		options.SHA = gh.String(sha)
	}
	return options
}

func (r *GitHubFilesystemRepository) commitMessage(verb, filePath string, opts entities.WriteOptions) string {
	if opts.Message != "" {
		return opts.Message
	}
	if message := r.settings.CommitMessage(); message != "" {
		return message
	}
	return verb + " " + filePath
}

// committer returns nil when nobody is configured so GitHub attributes the
// commit to the authenticated user.
func (r *GitHubFilesystemRepository) committer(opts entities.WriteOptions) *gh.CommitAuthor {
	committer := opts.Committer
	if committer == nil {
		committer = r.settings.Committer()
	}
	if committer == nil || committer.IsEmpty() {
		return nil
	}

	author := &gh.CommitAuthor{}
	if committer.Name != "" {
		author.Name = gh.String(committer.Name)
	}
	if committer.Email != "" {
		author.Email = gh.String(committer.Email)
	}
	return author
}

func (r *GitHubFilesystemRepository) log(filePath, ref string) *logger.Entry {
	return logger.WithFields(logger.Fields{
		"owner": r.settings.Owner(),
		"repo":  r.settings.Name(),
		"path":  filePath,
		"ref":   ref,
	})
}

func writtenRecord(response *gh.RepositoryContentResponse, filePath string) *entities.Metadata {
	if response == nil || response.Content == nil {
		return &entities.Metadata{Type: entities.EntryFile, Path: filePath, Name: path.Base(filePath)}
	}
	record := normalizeContent(response.Content)
	return &record
}

func isNotFound(err error) bool {
	var errResp *gh.ErrorResponse
	return errors.As(err, &errResp) &&
		errResp.Response != nil &&
		errResp.Response.StatusCode == http.StatusNotFound
}
