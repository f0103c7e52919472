package jekyll

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/divisor/internal/config"
	"git.home.luguber.info/inful/divisor/internal/logfields"
)

// siteConfigFile is the root _config.yml consumed by Jekyll. Field order is
// the emitted key order; the file is fully derived from SiteConfig and
// overwritten on every run.
type siteConfigFile struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Theme       string `yaml:"theme"`
	URL         string `yaml:"url,omitempty"`
}

// CreateStructure ensures the destination root exists with its generated
// _config.yml, a CNAME when a custom domain is configured, and a placeholder
// media folder. It never deletes unrelated user content already present in
// the destination.
func CreateStructure(destFolder string, cfg *config.SiteConfig) error {
	if info, err := os.Stat(destFolder); err == nil && !info.IsDir() {
		return &LayoutError{Path: destFolder, Err: fmt.Errorf("destination exists and is not a directory")}
	}
	if err := os.MkdirAll(destFolder, 0o750); err != nil {
		return &LayoutError{Path: destFolder, Err: err}
	}

	site := siteConfigFile{
		Title:       cfg.SiteMetadata.Title,
		Description: cfg.SiteMetadata.Description,
		Theme:       config.ThemeGem(cfg.SiteMetadata.Theme),
		URL:         cfg.SiteMetadata.GitHubPagesURL,
	}
	out, err := yaml.Marshal(&site)
	if err != nil {
		return &LayoutError{Path: destFolder, Err: err}
	}
	configPath := filepath.Join(destFolder, "_config.yml")
	if err := writeFileAtomic(configPath, out); err != nil {
		return &LayoutError{Path: configPath, Err: err}
	}

	if err := writeCNAME(destFolder, cfg.SiteMetadata.Domain()); err != nil {
		return err
	}

	mediaDir := filepath.Join(destFolder, filepath.FromSlash(cfg.ContentMapping.MediaDestinationFolder))
	if err := os.MkdirAll(mediaDir, 0o750); err != nil {
		return &LayoutError{Path: mediaDir, Err: err}
	}
	keep := filepath.Join(mediaDir, ".gitkeep")
	if _, err := os.Stat(keep); os.IsNotExist(err) {
		if err := os.WriteFile(keep, nil, 0o644); err != nil {
			return &LayoutError{Path: keep, Err: err}
		}
	}

	slog.Debug("Destination structure ready", logfields.Dest(destFolder), logfields.Theme(cfg.SiteMetadata.Theme))
	return nil
}

// writeCNAME keeps the CNAME file in sync with the configured custom domain.
// GitHub Pages reads the bare domain from this file at the site root.
func writeCNAME(destFolder, domain string) error {
	path := filepath.Join(destFolder, "CNAME")
	if domain == "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return &LayoutError{Path: path, Err: err}
		}
		return nil
	}
	if err := writeFileAtomic(path, []byte(domain+"\n")); err != nil {
		return &LayoutError{Path: path, Err: err}
	}
	return nil
}
