package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/divisor/internal/config"
	"git.home.luguber.info/inful/divisor/internal/git"
)

// DeployCmd implements the 'deploy' command.
type DeployCmd struct {
	GithubToken string `env:"GITHUB_TOKEN" help:"GitHub token for authentication"`
}

func (d *DeployCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	remoteURL := cfg.SiteMetadata.GitHubRepositoryURL
	if remoteURL == "" {
		return &config.ConfigError{
			Field: "site_metadata.github_repository_url",
			Err:   fmt.Errorf("a repository URL is required to deploy"),
		}
	}

	deployer := git.NewDeployer(cfg.ContentMapping.DestinationFolder)
	if err := deployer.Deploy(context.Background(), remoteURL, d.GithubToken); err != nil {
		return err
	}

	fmt.Println("Website deployed successfully!")
	return nil
}
