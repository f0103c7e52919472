package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/divisor/internal/config"
	"git.home.luguber.info/inful/divisor/internal/git"
	"git.home.luguber.info/inful/divisor/internal/logfields"
	"git.home.luguber.info/inful/divisor/internal/pipeline"
)

// WatchCmd implements the 'watch' command: fetch once, then regenerate the
// site whenever the local source tree changes. Useful when editing fetched
// content locally before pushing it back upstream.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before a change triggers a rebuild" default:"500ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := git.NewFetcher(cfg.SourceRepository, SourceRepoDir)
	if err := fetcher.Fetch(ctx); err != nil {
		return err
	}
	if err := w.regenerate(cfg, fetcher.Dir()); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watchTree(watcher, fetcher.Dir()); err != nil {
		return err
	}

	slog.Info("Watching source tree for changes", logfields.Path(fetcher.Dir()))

	var debounce *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories need their own watches.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchTree(watcher, event.Name)
				}
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(w.Debounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-rebuild:
			if err := w.regenerate(cfg, fetcher.Dir()); err != nil {
				slog.Error("Regeneration failed", logfields.Error(err))
			}
		}
	}
}

func (w *WatchCmd) regenerate(cfg *config.SiteConfig, sourceDir string) error {
	report, err := pipeline.Generate(cfg, sourceDir, cfg.ContentMapping.DestinationFolder)
	if err != nil {
		return err
	}
	for _, issue := range report.Errors() {
		slog.Warn("Recoverable failure",
			logfields.Stage(string(issue.Stage)),
			logfields.Path(issue.Path),
			logfields.Error(issue.Err))
	}
	return nil
}

// watchTree registers root and every directory below it, skipping the
// version-control metadata the pipeline skips too.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); name != filepath.Base(root) && len(name) > 0 && name[0] == '.' {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
