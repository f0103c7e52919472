package jekyll

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkFilesLexicalOrder(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"b.md", "a/nested.md", "a/first.md", "c/deep/file.md", "a.md"} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	var visited []string
	err := WalkFiles(root, nil, func(_, rel string, err error) error {
		require.NoError(t, err)
		visited = append(visited, rel)
		return nil
	})
	require.NoError(t, err)

	// Same order filepath.WalkDir would produce: directory entries sorted,
	// subtrees visited at their entry's position.
	assert.Equal(t, []string{"a/first.md", "a/nested.md", "a.md", "b.md", "c/deep/file.md"}, visited)
}

func TestWalkFilesSkipDir(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{".git/config", "kept/file.md"} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	var visited []string
	err := WalkFiles(root, func(name string) bool { return strings.HasPrefix(name, ".") }, func(_, rel string, err error) error {
		require.NoError(t, err)
		visited = append(visited, rel)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"kept/file.md"}, visited)
}

func TestWalkFilesReportsUnreadableDir(t *testing.T) {
	root := t.TempDir()
	err := WalkFiles(filepath.Join(root, "missing"), nil, func(_, rel string, err error) error {
		assert.Error(t, err)
		assert.Equal(t, ".", rel)
		return nil
	})
	require.NoError(t, err)
}
