package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/http"

	"git.home.luguber.info/inful/divisor/internal/logfields"
)

// PagesBranch is the branch GitHub Pages serves the generated site from.
const PagesBranch = "gh-pages"

// Deployer publishes a generated site tree to the hosting branch of the
// site's GitHub repository.
type Deployer struct {
	siteDir string
}

// NewDeployer creates a Deployer for the generated tree at siteDir.
func NewDeployer(siteDir string) *Deployer {
	return &Deployer{siteDir: siteDir}
}

// Deploy commits the current site tree and force-pushes it to the gh-pages
// branch of remoteURL. The branch holds generated output only, so history is
// overwritten rather than merged. token authenticates against GitHub over
// HTTPS; it may be empty for SSH remotes.
func (d *Deployer) Deploy(ctx context.Context, remoteURL, token string) error {
	repo, err := d.openOrInit()
	if err != nil {
		return err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := worktree.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage site contents: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return fmt.Errorf("failed to read worktree status: %w", err)
	}
	if !status.IsClean() {
		commit, err := worktree.Commit("Deploy website", &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  "divisor",
				Email: "divisor@localhost",
				When:  time.Now(),
			},
		})
		if err != nil {
			return fmt.Errorf("failed to commit site contents: %w", err)
		}
		slog.Debug("Committed site contents", slog.String("commit", commit.String()[:8]))
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if err := ensureRemote(repo, remoteURL); err != nil {
		return err
	}

	pushOptions := &gogit.PushOptions{
		RemoteName: "origin",
		RemoteURL:  remoteURL,
		RefSpecs: []gitcfg.RefSpec{
			gitcfg.RefSpec(fmt.Sprintf("+%s:refs/heads/%s", head.Name(), PagesBranch)),
		},
		Force: true,
	}
	if token != "" {
		// GitHub accepts any username when a token is supplied as password.
		pushOptions.Auth = &http.BasicAuth{Username: "divisor", Password: token}
	}

	slog.Info("Pushing site", logfields.URL(remoteURL), logfields.Branch(PagesBranch))
	err = repo.PushContext(ctx, pushOptions)
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		slog.Info("Remote already up to date", logfields.Branch(PagesBranch))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push to %s: %w", PagesBranch, err)
	}
	return nil
}

// ensureRemote points origin at remoteURL, creating or updating it so the
// push target always matches the configured repository.
func ensureRemote(repo *gogit.Repository, remoteURL string) error {
	remoteConfig := &gitcfg.RemoteConfig{Name: "origin", URLs: []string{remoteURL}}

	existing, err := repo.Remote("origin")
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		_, err = repo.CreateRemote(remoteConfig)
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to read remote: %w", err)
	}

	if len(existing.Config().URLs) != 1 || existing.Config().URLs[0] != remoteURL {
		if err := repo.DeleteRemote("origin"); err != nil {
			return fmt.Errorf("failed to replace remote: %w", err)
		}
		if _, err := repo.CreateRemote(remoteConfig); err != nil {
			return err
		}
	}
	return nil
}

// openOrInit opens the repository backing the site tree, initializing one on
// first deploy.
func (d *Deployer) openOrInit() (*gogit.Repository, error) {
	repo, err := gogit.PlainOpen(d.siteDir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("failed to open site repository: %w", err)
	}

	slog.Debug("Initializing site repository", logfields.Path(d.siteDir))
	repo, err = gogit.PlainInit(d.siteDir, false)
	if err != nil {
		return nil, fmt.Errorf("failed to init site repository: %w", err)
	}
	return repo, nil
}
