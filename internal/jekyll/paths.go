package jekyll

import (
	"path"
	"path/filepath"
	"strings"
)

// IndexFile is the per-directory index file name every converted page gets.
const IndexFile = "index.md"

// PageUnit describes one source page and where its converted form lands.
// Units are derived by the orchestrator's tree walk and consumed exactly
// once by the Converter.
type PageUnit struct {
	SourcePath string // path to the source markdown file on disk
	DestPath   string // destination file, always ending in IndexFile
	BaseDir    string // source tree root that relative link targets resolve against
}

// IsMarkdown reports whether name has a markdown file extension.
func IsMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// PageDestination maps a subpage path relative to the subpages root onto its
// destination file: a/b/c.md becomes <destFolder>/a/b/c/<IndexFile>, so every
// page owns a directory and a clean URL.
func PageDestination(destFolder, relPath string) string {
	stem := strings.TrimSuffix(relPath, filepath.Ext(relPath))
	return filepath.Join(destFolder, filepath.FromSlash(stem), IndexFile)
}

// PageURL returns the destination-root-relative URL of a converted subpage:
// a/b/c.md becomes a/b/c/.
func PageURL(relPath string) string {
	rel := filepath.ToSlash(relPath)
	return strings.TrimSuffix(rel, path.Ext(rel)) + "/"
}
