package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUpstream creates a local repository with one committed file, usable as
// a clone source.
func newUpstream(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err = worktree.Add(rel)
		require.NoError(t, err)
	}

	_, err = worktree.Commit("initial content", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@localhost", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestFetchClonesFreshCopy(t *testing.T) {
	upstream := newUpstream(t, map[string]string{"home.md": "# Welcome\n"})
	dest := filepath.Join(t.TempDir(), "source_repo")

	fetcher := NewFetcher(upstream, dest)
	require.NoError(t, fetcher.Fetch(context.Background()))

	assert.Equal(t, dest, fetcher.Dir())
	content, err := os.ReadFile(filepath.Join(dest, "home.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Welcome\n", string(content))
}

func TestFetchExistingCloneIsUpToDate(t *testing.T) {
	upstream := newUpstream(t, map[string]string{"home.md": "# Welcome\n"})
	dest := filepath.Join(t.TempDir(), "source_repo")

	fetcher := NewFetcher(upstream, dest)
	require.NoError(t, fetcher.Fetch(context.Background()))
	// Second fetch pulls into the existing clone instead of recloning.
	require.NoError(t, fetcher.Fetch(context.Background()))

	assert.FileExists(t, filepath.Join(dest, "home.md"))
}

func TestFetchInvalidURL(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "source_repo")
	fetcher := NewFetcher(filepath.Join(t.TempDir(), "nonexistent"), dest)

	err := fetcher.Fetch(context.Background())
	assert.Error(t, err)
}

func TestDeployCommitsAndPushes(t *testing.T) {
	// A bare repository stands in for the GitHub remote.
	remoteDir := t.TempDir()
	_, err := gogit.PlainInit(remoteDir, true)
	require.NoError(t, err)

	siteDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "index.md"), []byte("---\ntitle: Home\n---\n"), 0o644))

	deployer := NewDeployer(siteDir)
	require.NoError(t, deployer.Deploy(context.Background(), remoteDir, ""))

	remote, err := gogit.PlainOpen(remoteDir)
	require.NoError(t, err)
	branch, err := remote.Reference("refs/heads/gh-pages", true)
	require.NoError(t, err)
	assert.False(t, branch.Hash().IsZero())
}

func TestDeployTwiceIsIdempotent(t *testing.T) {
	remoteDir := t.TempDir()
	_, err := gogit.PlainInit(remoteDir, true)
	require.NoError(t, err)

	siteDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "index.md"), []byte("content"), 0o644))

	deployer := NewDeployer(siteDir)
	require.NoError(t, deployer.Deploy(context.Background(), remoteDir, ""))
	// No changes since the last deploy: nothing to commit, push is a no-op.
	require.NoError(t, deployer.Deploy(context.Background(), remoteDir, ""))
}
