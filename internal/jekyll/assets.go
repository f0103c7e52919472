package jekyll

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/divisor/internal/logfields"
)

// AssetRecord pairs an asset's source-relative path with the destination it
// was copied to. The destination is always the media folder joined with the
// unchanged source relative path, the same rule the link rewriter applies.
type AssetRecord struct {
	SourceRel string
	DestRel   string
}

// CopyAssets copies every non-markdown file reachable under sourceRoot into
// destFolder/mediaFolder, preserving relative structure and bytes. Markdown
// files and dot-prefixed version-control directories are skipped.
//
// Per-file failures do not stop the copy; they are returned alongside the
// records of the files that did copy, in deterministic walk order.
func CopyAssets(sourceRoot, destFolder, mediaFolder string) ([]AssetRecord, []error) {
	var (
		records []AssetRecord
		errs    []error
	)

	mediaDest := filepath.Join(destFolder, filepath.FromSlash(mediaFolder))
	skipDot := func(name string) bool { return strings.HasPrefix(name, ".") }

	_ = WalkFiles(sourceRoot, skipDot, func(path, rel string, err error) error {
		if err != nil {
			errs = append(errs, &AssetCopyError{Path: path, Err: err})
			return nil
		}
		if IsMarkdown(path) {
			return nil
		}

		if err := copyFile(path, filepath.Join(mediaDest, filepath.FromSlash(rel))); err != nil {
			errs = append(errs, err)
			return nil
		}

		record := AssetRecord{SourceRel: rel, DestRel: mediaFolder + "/" + rel}
		records = append(records, record)
		slog.Debug("Copied asset", logfields.Source(path), logfields.Dest(record.DestRel))
		return nil
	})

	return records, errs
}

// copyFile duplicates bytes unchanged, creating parent directories on demand.
func copyFile(src, dest string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return &AssetCopyError{Path: src, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return &AssetCopyError{Path: src, Err: err}
	}
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return &AssetCopyError{Path: src, Err: err}
	}
	return nil
}
