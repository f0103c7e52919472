package pipeline

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/divisor/internal/config"
	"git.home.luguber.info/inful/divisor/internal/jekyll"
	"git.home.luguber.info/inful/divisor/internal/logfields"
)

// Generate runs the full conversion pipeline over a fetched source tree.
//
// Fatal errors (unusable layout, missing home page) abort the run and are
// returned; recoverable per-file errors are accumulated on the returned
// report, which then carries a degraded outcome. The report is returned in
// both cases.
func Generate(cfg *config.SiteConfig, sourceDir, destDir string) (*RunReport, error) {
	rs := NewRunState(cfg, sourceDir, destDir)

	stages := []StageDef{
		{Name: StageCreateLayout, Next: StateLayoutCreated, Fn: stageCreateLayout},
		{Name: StageConvertHome, Next: StateHomeConverted, Fn: stageConvertHome},
		{Name: StageConvertSubpages, Next: StateSubpagesConverted, Fn: stageConvertSubpages},
		{Name: StageCopyAssets, Next: StateAssetsCopied, Fn: stageCopyAssets},
	}

	slog.Info("Generating site",
		logfields.RunID(rs.Report.RunID),
		logfields.Source(sourceDir),
		logfields.Dest(destDir))

	err := RunStages(rs, stages)
	return rs.Report, err
}

func stageCreateLayout(rs *RunState) error {
	return jekyll.CreateStructure(rs.DestDir, rs.Cfg)
}

// stageConvertHome writes the destination root index. The home page defines
// the site's entry point, so any failure here is fatal.
func stageConvertHome(rs *RunState) error {
	unit := jekyll.PageUnit{
		SourcePath: filepath.Join(rs.SourceDir, filepath.FromSlash(rs.Cfg.ContentMapping.HomePageSource)),
		DestPath:   filepath.Join(rs.DestDir, jekyll.IndexFile),
		BaseDir:    rs.SourceDir,
	}
	if err := rs.converter.Convert(unit); err != nil {
		return err
	}
	rs.Report.PagesConverted++
	return nil
}

// stageConvertSubpages traverses the subpages folder in deterministic order.
// An unconfigured or absent folder is a warned skip, not an error; per-page
// failures are recorded and the traversal continues.
func stageConvertSubpages(rs *RunState) error {
	mapping := &rs.Cfg.ContentMapping
	if !mapping.HasSubpages() {
		slog.Warn("No subpages folder configured, skipping subpage conversion", logfields.RunID(rs.Report.RunID))
		return nil
	}

	subpagesDir := filepath.Join(rs.SourceDir, filepath.FromSlash(mapping.SubpagesFolder))
	if info, err := os.Stat(subpagesDir); err != nil || !info.IsDir() {
		slog.Warn("Subpages folder not found in source tree, skipping subpage conversion",
			logfields.RunID(rs.Report.RunID), logfields.Path(subpagesDir))
		return nil
	}

	homeSource := filepath.Clean(filepath.Join(rs.SourceDir, filepath.FromSlash(mapping.HomePageSource)))
	skipDot := func(name string) bool { return strings.HasPrefix(name, ".") }

	return jekyll.WalkFiles(subpagesDir, skipDot, func(path, rel string, err error) error {
		if err != nil {
			rs.Report.AddIssue(StageConvertSubpages, path, SeverityError, err)
			return nil
		}
		if !jekyll.IsMarkdown(path) {
			return nil
		}
		// The home page already went to the destination root.
		if filepath.Clean(path) == homeSource {
			return nil
		}

		unit := jekyll.PageUnit{
			SourcePath: path,
			DestPath:   jekyll.PageDestination(rs.DestDir, rel),
			BaseDir:    rs.SourceDir,
		}
		if err := rs.converter.Convert(unit); err != nil {
			rs.Report.AddIssue(StageConvertSubpages, path, SeverityError, err)
			slog.Warn("Skipping page", logfields.Path(path), logfields.Error(err))
			return nil
		}
		rs.Report.PagesConverted++
		return nil
	})
}

func stageCopyAssets(rs *RunState) error {
	records, errs := jekyll.CopyAssets(
		rs.SourceDir,
		rs.DestDir,
		rs.Cfg.ContentMapping.MediaDestinationFolder,
	)
	rs.Report.AssetsCopied = len(records)
	for _, err := range errs {
		var copyErr *jekyll.AssetCopyError
		path := ""
		if errors.As(err, &copyErr) {
			path = copyErr.Path
		}
		rs.Report.AddIssue(StageCopyAssets, path, SeverityError, err)
	}
	return nil
}
