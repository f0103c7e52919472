package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// None is the sentinel used in config files for optional fields that are unset.
const None = "<none>"

// ConfigError indicates a malformed or incomplete configuration. It is always
// fatal: no conversion starts with a bad config.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// SiteConfig is the validated, immutable application configuration.
// It is constructed once by Load and read-only thereafter.
type SiteConfig struct {
	SiteMetadata     SiteMetadata   `yaml:"site_metadata"`
	SourceRepository string         `yaml:"source_repository"`
	ContentMapping   ContentMapping `yaml:"content_mapping"`
}

// SiteMetadata describes the generated site itself.
type SiteMetadata struct {
	Title               string `yaml:"title"`
	Description         string `yaml:"description"`
	Theme               string `yaml:"theme"`
	GitHubRepositoryURL string `yaml:"github_repository_url"`
	GitHubPagesURL      string `yaml:"github_pages_url"`
	CustomDomain        string `yaml:"custom_domain"`
}

// ContentMapping maps the source tree onto the generated site tree.
type ContentMapping struct {
	HomePageSource         string `yaml:"home_page_source"`
	SubpagesFolder         string `yaml:"subpages_folder"`
	DestinationFolder      string `yaml:"destination_folder"`
	MediaDestinationFolder string `yaml:"media_destination_folder"`
}

// HasSubpages reports whether a subpages folder is configured.
func (c *ContentMapping) HasSubpages() bool {
	return c.SubpagesFolder != "" && c.SubpagesFolder != None
}

// Domain returns the custom domain, or "" if none is configured.
func (m *SiteMetadata) Domain() string {
	if m.CustomDomain == None {
		return ""
	}
	return m.CustomDomain
}

// Load reads, expands, and validates the configuration file.
func Load(configPath string) (*SiteConfig, error) {
	// Load .env if present so ${VAR} expansion and deploy tokens work.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &ConfigError{Err: fmt.Errorf("configuration file not found: %s", configPath)}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	var cfg SiteConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("failed to unmarshal config: %w", err)}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *SiteConfig) {
	if cfg.SiteMetadata.Title == "" {
		cfg.SiteMetadata.Title = "My Awesome Website"
	}
	if cfg.SiteMetadata.Theme == "" {
		cfg.SiteMetadata.Theme = DefaultTheme
	}
	if cfg.ContentMapping.HomePageSource == "" {
		cfg.ContentMapping.HomePageSource = "home.md"
	}
	if cfg.ContentMapping.DestinationFolder == "" {
		cfg.ContentMapping.DestinationFolder = "site_contents"
	}
	if cfg.ContentMapping.MediaDestinationFolder == "" {
		cfg.ContentMapping.MediaDestinationFolder = "assets/media"
	}
}

// Validate checks the invariants every downstream component relies on.
func (cfg *SiteConfig) Validate() error {
	if !IsValidTheme(cfg.SiteMetadata.Theme) {
		return &ConfigError{
			Field: "site_metadata.theme",
			Err:   fmt.Errorf("unknown theme %q (run 'divisor themes' for the supported list)", cfg.SiteMetadata.Theme),
		}
	}
	if cfg.SourceRepository == "" {
		return &ConfigError{Field: "source_repository", Err: fmt.Errorf("source repository URL is required")}
	}
	if err := validateRelativePath("content_mapping.destination_folder", cfg.ContentMapping.DestinationFolder); err != nil {
		return err
	}
	if err := validateRelativePath("content_mapping.media_destination_folder", cfg.ContentMapping.MediaDestinationFolder); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.ContentMapping.HomePageSource) == "" {
		return &ConfigError{Field: "content_mapping.home_page_source", Err: fmt.Errorf("home page source path is required")}
	}
	return nil
}

func validateRelativePath(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ConfigError{Field: field, Err: fmt.Errorf("path must be non-empty")}
	}
	if strings.HasPrefix(value, "/") {
		return &ConfigError{Field: field, Err: fmt.Errorf("path %q must be relative", value)}
	}
	for _, seg := range strings.Split(value, "/") {
		if seg == ".." {
			return &ConfigError{Field: field, Err: fmt.Errorf("path %q must not escape the working tree", value)}
		}
	}
	return nil
}
