package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/divisor/internal/config"
	"git.home.luguber.info/inful/divisor/internal/git"
	"git.home.luguber.info/inful/divisor/internal/logfields"
	"git.home.luguber.info/inful/divisor/internal/pipeline"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	SkipFetch bool `help:"Use the existing source_repo directory instead of fetching"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	return runGenerate(context.Background(), cfg, g.SkipFetch)
}

// runGenerate fetches the source (unless told not to) and runs the full
// conversion pipeline, translating the run report into the process outcome.
func runGenerate(ctx context.Context, cfg *config.SiteConfig, skipFetch bool) error {
	fetcher := git.NewFetcher(cfg.SourceRepository, SourceRepoDir)
	if !skipFetch {
		if err := fetcher.Fetch(ctx); err != nil {
			return err
		}
	}

	report, err := pipeline.Generate(cfg, fetcher.Dir(), cfg.ContentMapping.DestinationFolder)
	if err != nil {
		return err
	}

	for _, issue := range report.Errors() {
		slog.Error("Recoverable failure",
			logfields.Stage(string(issue.Stage)),
			logfields.Path(issue.Path),
			logfields.Error(issue.Err))
	}

	slog.Info("Run finished",
		logfields.RunID(report.RunID),
		slog.String("outcome", string(report.Outcome())),
		slog.Int("pages", report.PagesConverted),
		slog.Int("assets", report.AssetsCopied))

	if report.Outcome() == pipeline.OutcomeDegraded {
		return fmt.Errorf("website generated with %d recoverable errors", len(report.Errors()))
	}

	fmt.Println("Website generated successfully!")
	return nil
}
