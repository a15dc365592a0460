package gitcommit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	return dir, repo
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestRecord_CommitsStagedChangesWithMessage(t *testing.T) {
	dir, repo := initRepo(t)
	writeFile(t, dir, "main.go", "package main\n")

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("main.go"); err != nil {
		t.Fatalf("add: %v", err)
	}

	rec := New(repo, WithAuthor("Dev", "dev@example.com"), WithClock(fixedClock))
	message := "feat(api): add endpoint\n\nadds the endpoint\n\nBREAKING CHANGE: old api removed"
	hash, err := rec.Record(context.Background(), message)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := rec.Message(hash)
	if err != nil {
		t.Fatalf("message: %v", err)
	}
	if got != message {
		t.Fatalf("stored message mismatch:\nwant %q\n got %q", message, got)
	}

	commit, err := repo.CommitObject(mustHead(t, repo))
	if err != nil {
		t.Fatalf("head commit: %v", err)
	}
	if commit.Author.Name != "Dev" || !commit.Author.When.Equal(fixedClock()) {
		t.Fatalf("unexpected author %+v", commit.Author)
	}
}

func TestRecord_NothingStaged(t *testing.T) {
	dir, repo := initRepo(t)
	writeFile(t, dir, "untracked.txt", "x")

	rec := New(repo, WithAuthor("Dev", "dev@example.com"))
	if _, err := rec.Record(context.Background(), "fix: x"); !errors.Is(err, ErrNothingToCommit) {
		t.Fatalf("expected ErrNothingToCommit, got %v", err)
	}
}

func TestRecord_StageAll(t *testing.T) {
	dir, repo := initRepo(t)
	writeFile(t, dir, "a.txt", "a")

	rec := New(repo, WithAuthor("Dev", "dev@example.com"), WithStageAll(true))
	if _, err := rec.Record(context.Background(), "chore: add a"); err != nil {
		t.Fatalf("record: %v", err)
	}
	staged, err := rec.HasStagedChanges()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if staged {
		t.Fatalf("index should be clean after commit")
	}
}

func TestRecord_CanceledContext(t *testing.T) {
	_, repo := initRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(repo).Record(ctx, "fix: x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestOpen_DetectsParentRepository(t *testing.T) {
	dir, _ := initRepo(t)
	sub := filepath.Join(dir, "pkg", "deep")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := Open(sub); err != nil {
		t.Fatalf("open from subdirectory: %v", err)
	}
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatalf("expected error outside a repository")
	}
}

func mustHead(t *testing.T, repo *git.Repository) plumbing.Hash {
	t.Helper()
	ref, err := repo.Head()
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	return ref.Hash()
}
