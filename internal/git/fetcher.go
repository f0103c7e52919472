// Package git wraps the go-git operations divisor needs: fetching the
// source repository and publishing the generated site to GitHub Pages.
package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/divisor/internal/logfields"
)

// Fetcher acquires the source content repository onto local disk.
type Fetcher struct {
	url string
	dir string
}

// NewFetcher creates a Fetcher that materializes url under dir.
func NewFetcher(url, dir string) *Fetcher {
	return &Fetcher{url: url, dir: dir}
}

// Dir returns the local path the source tree lives at after Fetch.
func (f *Fetcher) Dir() string { return f.dir }

// Fetch clones the source repository, or pulls if a clone already exists.
// A pull that cannot fast-forward falls back to a fresh clone: the local
// copy is a disposable mirror, never a place where work happens.
func (f *Fetcher) Fetch(ctx context.Context) error {
	if _, err := os.Stat(filepath.Join(f.dir, ".git")); err == nil {
		if err := f.pull(ctx); err == nil {
			return nil
		} else if !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
			slog.Warn("Pull failed, falling back to fresh clone", logfields.URL(f.url), logfields.Error(err))
		} else {
			return nil
		}
	}
	return f.clone(ctx)
}

func (f *Fetcher) clone(ctx context.Context) error {
	if err := os.RemoveAll(f.dir); err != nil {
		return fmt.Errorf("failed to remove existing source directory: %w", err)
	}

	slog.Info("Cloning source repository", logfields.URL(f.url), logfields.Path(f.dir))
	_, err := gogit.PlainCloneContext(ctx, f.dir, false, &gogit.CloneOptions{
		URL: f.url,
	})
	if err != nil {
		return fmt.Errorf("failed to clone repository %s: %w", f.url, err)
	}
	return nil
}

func (f *Fetcher) pull(ctx context.Context) error {
	repo, err := gogit.PlainOpen(f.dir)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	slog.Debug("Pulling source repository", logfields.URL(f.url), logfields.Path(f.dir))
	err = worktree.PullContext(ctx, &gogit.PullOptions{RemoteName: "origin"})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		slog.Info("Source repository already up to date", logfields.Path(f.dir))
		return gogit.NoErrAlreadyUpToDate
	}
	if err != nil {
		return fmt.Errorf("failed to pull repository: %w", err)
	}
	return nil
}
