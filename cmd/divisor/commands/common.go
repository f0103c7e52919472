package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// SourceRepoDir is where the fetched source repository lives, relative to
// the invocation directory.
const SourceRepoDir = "source_repo"

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Path to the configuration file" default:"config.yml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate the website from the configured source repository"`
	Deploy   DeployCmd   `cmd:"" help:"Deploy the generated website to GitHub Pages"`
	Setup    SetupCmd    `cmd:"" help:"Interactively create a config.yml file"`
	Themes   ThemesCmd   `cmd:"" help:"List the available Jekyll themes for GitHub Pages"`
	Clean    CleanCmd    `cmd:"" help:"Remove the fetched source and the generated site"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the website whenever the source tree changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
