// Package gitcommit records an assembled commit message in a git repository.
package gitcommit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"
)

// ErrNothingToCommit is returned when the index holds no staged changes.
var ErrNothingToCommit = errors.New("gitcommit: nothing to commit")

// Recorder commits a message.
type Recorder interface {
	Record(ctx context.Context, message string) (string, error)
}

// Option configures a Repository recorder.
type Option func(*Repository)

// WithAuthor sets the commit author. Without it the author comes from the
// repository git config.
func WithAuthor(name, email string) Option {
	return func(r *Repository) {
		r.author = &object.Signature{Name: name, Email: email}
	}
}

// WithStageAll stages every modified, deleted and untracked file before
// committing, like `git add --all`.
func WithStageAll(all bool) Option {
	return func(r *Repository) {
		r.stageAll = all
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// WithClock overrides the commit timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// Repository records commits with go-git.
type Repository struct {
	repo     *git.Repository
	author   *object.Signature
	stageAll bool
	logger   zerolog.Logger
	now      func() time.Time
}

var _ Recorder = (*Repository)(nil)

// Open finds the repository containing path, walking up parent directories.
func Open(path string, options ...Option) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("gitcommit: open %s: %w", path, err)
	}
	return New(repo, options...), nil
}

// New wraps an already opened repository.
func New(repo *git.Repository, options ...Option) *Repository {
	r := &Repository{
		repo:   repo,
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// HasStagedChanges reports whether the index differs from HEAD.
func (r *Repository) HasStagedChanges() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("gitcommit: worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("gitcommit: status: %w", err)
	}
	for _, s := range status {
		if s.Staging != git.Unmodified && s.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}

// Record commits the staged changes with message and returns the new commit
// hash.
func (r *Repository) Record(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("gitcommit: worktree: %w", err)
	}

	if r.stageAll {
		if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
			return "", fmt.Errorf("gitcommit: stage all: %w", err)
		}
	}

	staged, err := r.HasStagedChanges()
	if err != nil {
		return "", err
	}
	if !staged {
		return "", ErrNothingToCommit
	}

	opts := &git.CommitOptions{}
	if r.author != nil {
		author := *r.author
		author.When = r.now()
		opts.Author = &author
	}

	hash, err := wt.Commit(message, opts)
	if err != nil {
		return "", fmt.Errorf("gitcommit: commit: %w", err)
	}
	r.logger.Debug().Str("hash", hash.String()).Msg("commit recorded")
	return hash.String(), nil
}

// Message returns the message of the commit identified by hash.
func (r *Repository) Message(hash string) (string, error) {
	commit, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return "", fmt.Errorf("gitcommit: read commit %s: %w", hash, err)
	}
	return commit.Message, nil
}
