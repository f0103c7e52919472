package jekyll

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageDestination(t *testing.T) {
	tests := []struct {
		name    string
		dest    string
		relPath string
		want    string
	}{
		{"nested page", "site", "a/b/c.md", filepath.Join("site", "a", "b", "c", "index.md")},
		{"top level page", "site", "about.md", filepath.Join("site", "about", "index.md")},
		{"markdown extension variant", "site", "notes.markdown", filepath.Join("site", "notes", "index.md")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageDestination(tt.dest, tt.relPath))
		})
	}
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "a/b/c/", PageURL("a/b/c.md"))
	assert.Equal(t, "about/", PageURL("about.md"))
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("page.md"))
	assert.True(t, IsMarkdown("page.MD"))
	assert.True(t, IsMarkdown("page.markdown"))
	assert.False(t, IsMarkdown("image.png"))
	assert.False(t, IsMarkdown("README"))
}
