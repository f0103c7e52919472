package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
site_metadata:
  title: Fonte Wiki
  description: A community wiki
  theme: cayman
  github_repository_url: git@github.com:fonte-wiki/site.git
  github_pages_url: https://fonte-wiki.github.io/site/
  custom_domain: "<none>"
source_repository: https://github.com/fonte-wiki/Backup-fonte-wiki
content_mapping:
  home_page_source: home.md
  subpages_folder: pages
  destination_folder: site_contents
  media_destination_folder: assets/media
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Fonte Wiki", cfg.SiteMetadata.Title)
	assert.Equal(t, "cayman", cfg.SiteMetadata.Theme)
	assert.Equal(t, "", cfg.SiteMetadata.Domain())
	assert.True(t, cfg.ContentMapping.HasSubpages())
	assert.Equal(t, "pages", cfg.ContentMapping.SubpagesFolder)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
source_repository: https://github.com/example/repo
content_mapping:
  subpages_folder: "<none>"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultTheme, cfg.SiteMetadata.Theme)
	assert.Equal(t, "home.md", cfg.ContentMapping.HomePageSource)
	assert.Equal(t, "site_contents", cfg.ContentMapping.DestinationFolder)
	assert.Equal(t, "assets/media", cfg.ContentMapping.MediaDestinationFolder)
	assert.False(t, cfg.ContentMapping.HasSubpages())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name: "unknown theme",
			yaml: `
site_metadata:
  theme: solarized
source_repository: https://github.com/example/repo
`,
			field: "site_metadata.theme",
		},
		{
			name:  "missing source repository",
			yaml:  `{}`,
			field: "source_repository",
		},
		{
			name: "absolute destination folder",
			yaml: `
source_repository: https://github.com/example/repo
content_mapping:
  destination_folder: /var/www
`,
			field: "content_mapping.destination_folder",
		},
		{
			name: "escaping media folder",
			yaml: `
source_repository: https://github.com/example/repo
content_mapping:
  media_destination_folder: ../media
`,
			field: "content_mapping.media_destination_folder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestThemeGem(t *testing.T) {
	assert.Equal(t, "minima", ThemeGem("minima"))
	assert.Equal(t, "jekyll-theme-cayman", ThemeGem("cayman"))
	assert.Equal(t, "jekyll-theme-leap-day", ThemeGem("leap-day"))
}

func TestIsValidTheme(t *testing.T) {
	for _, theme := range Themes {
		assert.True(t, IsValidTheme(theme), theme)
	}
	assert.False(t, IsValidTheme("hextra"))
	assert.False(t, IsValidTheme(""))
}
