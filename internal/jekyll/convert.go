package jekyll

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/divisor/internal/frontmatter"
	"git.home.luguber.info/inful/divisor/internal/logfields"
	"git.home.luguber.info/inful/divisor/internal/markdown"
)

var titleCaser = cases.Title(language.English)

// Converter reads source pages, synthesizes front matter, rewrites link
// targets, and writes converted pages into the destination tree.
type Converter struct {
	theme    string
	rewriter *LinkRewriter
}

// NewConverter creates a Converter. theme becomes the layout of every page
// that does not already declare one.
func NewConverter(theme string, rewriter *LinkRewriter) *Converter {
	return &Converter{theme: theme, rewriter: rewriter}
}

// Convert transforms one source page and writes it to unit.DestPath.
//
// Existing front matter keys pass through untouched; only missing title and
// layout keys are filled in. Output is written via a temp file and rename so
// a failure never leaves a partial destination file, and repeated runs over
// identical input produce byte-identical output.
func (c *Converter) Convert(unit PageUnit) error {
	content, err := os.ReadFile(unit.SourcePath)
	if err != nil {
		return &ReadError{Path: unit.SourcePath, Err: err}
	}
	if !utf8.Valid(content) {
		return &ReadError{Path: unit.SourcePath, Err: fmt.Errorf("not valid UTF-8 text")}
	}

	raw, body, _, err := frontmatter.Split(content)
	if err != nil {
		return &ReadError{Path: unit.SourcePath, Err: err}
	}
	fields, err := frontmatter.Parse(raw)
	if err != nil {
		return &ReadError{Path: unit.SourcePath, Err: err}
	}

	if missing(fields, "title") {
		fields["title"] = c.deriveTitle(body, unit)
	}
	if missing(fields, "layout") {
		fields["layout"] = c.theme
	}

	rewritten := markdown.RewriteLinks(string(body), func(target string, _ bool) string {
		return c.rewriter.Rewrite(target, unit.SourcePath)
	})

	serialized, err := frontmatter.Serialize(fields)
	if err != nil {
		return &WriteError{Path: unit.DestPath, Err: err}
	}
	page := frontmatter.Join(serialized, []byte(rewritten))

	if err := writeFileAtomic(unit.DestPath, page); err != nil {
		return err
	}

	slog.Debug("Converted page", logfields.Source(unit.SourcePath), logfields.Dest(unit.DestPath))
	return nil
}

func missing(fields map[string]any, key string) bool {
	v, ok := fields[key]
	return !ok || v == nil || v == ""
}

// deriveTitle prefers the first level-1 heading; otherwise the source path
// relative to the tree root, with separators and underscores as spaces,
// title-cased.
func (c *Converter) deriveTitle(body []byte, unit PageUnit) string {
	if title, ok := markdown.FirstHeading(body); ok {
		return title
	}

	name := unit.SourcePath
	if rel, err := filepath.Rel(unit.BaseDir, unit.SourcePath); err == nil {
		name = rel
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("/", " ", "\\", " ", "_", " ").Replace(filepath.ToSlash(name))
	return titleCaser.String(name)
}

// writeFileAtomic materializes content next to the final path and renames it
// into place, creating missing parent directories.
func writeFileAtomic(dest string, content []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &WriteError{Path: dest, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".divisor-*.tmp")
	if err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &WriteError{Path: dest, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: dest, Err: err}
	}
	// CreateTemp uses 0600; converted pages should be world-readable.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: dest, Err: err}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: dest, Err: err}
	}
	return nil
}
