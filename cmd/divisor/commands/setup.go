package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/divisor/internal/config"
)

// SetupCmd implements the interactive 'setup' command.
type SetupCmd struct{}

func (s *SetupCmd) Run(_ *Global, root *CLI) error {
	return RunSetup(root.Config, os.Stdin, os.Stdout)
}

// RunSetup walks the user through creating a configuration file. in and out
// are parameters so the dialogue is testable.
func RunSetup(configPath string, in io.Reader, out io.Writer) error {
	p := &prompter{in: bufio.NewScanner(in), out: out}

	fmt.Fprintln(out, "Welcome to the Divisor setup script!")
	fmt.Fprintln(out, "This will guide you through creating your config.yml file.")

	var cfg config.SiteConfig
	cfg.SiteMetadata.Title = p.ask("Enter your website's title", "My Awesome Website")
	cfg.SiteMetadata.Description = p.ask("Enter your website's description", "Website created with fonte.wiki and Divisor")
	cfg.SiteMetadata.Theme = p.askTheme()

	defaultRepoURL := "git@github.com:your-username/your-repo.git"
	cfg.SiteMetadata.GitHubRepositoryURL = p.ask("Enter your GitHub repository URL (e.g., git@github.com:user/repo.git)", defaultRepoURL)
	cfg.SiteMetadata.GitHubPagesURL = p.ask("Enter your GitHub Pages URL", defaultPagesURL(cfg.SiteMetadata.GitHubRepositoryURL))
	cfg.SiteMetadata.CustomDomain = p.ask("Enter your custom domain (or leave as '<none>')", config.None)

	cfg.SourceRepository = p.ask("Enter the source repository URL", "https://github.com/fonte-wiki/Backup-fonte-wiki")

	cfg.ContentMapping.HomePageSource = p.ask("Enter the path to your home page file", "home.md")
	cfg.ContentMapping.SubpagesFolder = p.ask("Enter the folder for subpages (or '<none>')", config.None)
	cfg.ContentMapping.DestinationFolder = p.ask("Enter the destination folder for the generated site", "site_contents")
	cfg.ContentMapping.MediaDestinationFolder = p.ask("Enter the destination folder for media files", "assets/media")

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	fmt.Fprintf(out, "\n%s created successfully!\n", configPath)
	return nil
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask prompts for one value; an empty answer keeps the default.
func (p *prompter) ask(question, defaultValue string) string {
	fmt.Fprintf(p.out, "%s [%s]: ", question, defaultValue)
	if !p.in.Scan() {
		return defaultValue
	}
	answer := strings.TrimSpace(p.in.Text())
	if answer == "" {
		return defaultValue
	}
	return answer
}

// askTheme shows the numbered theme menu and keeps asking until the answer
// is a valid choice.
func (p *prompter) askTheme() string {
	fmt.Fprintln(p.out, "Choose a theme:")
	for i, theme := range config.Themes {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, theme)
	}

	defaultChoice := 0
	for i, theme := range config.Themes {
		if theme == config.DefaultTheme {
			defaultChoice = i + 1
		}
	}

	for {
		answer := p.ask("Enter the number of your choice", strconv.Itoa(defaultChoice))
		choice, err := strconv.Atoi(answer)
		if err == nil && choice >= 1 && choice <= len(config.Themes) {
			return config.Themes[choice-1]
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(config.Themes))
	}
}

// defaultPagesURL derives the GitHub Pages URL from a repository URL of the
// form git@github.com:user/repo.git or https://github.com/user/repo.git.
func defaultPagesURL(repoURL string) string {
	fallback := "https://your-username.github.io/your-repo/"
	trimmed, ok := strings.CutSuffix(repoURL, ".git")
	if !ok {
		return fallback
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return fallback
	}
	repo := parts[len(parts)-1]
	user := parts[len(parts)-2]
	if idx := strings.LastIndex(user, ":"); idx >= 0 {
		user = user[idx+1:]
	}
	if user == "" || repo == "" {
		return fallback
	}
	return fmt.Sprintf("https://%s.github.io/%s/", user, repo)
}
