package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/divisor/internal/config"
)

// CleanCmd implements the 'clean' command.
type CleanCmd struct{}

func (c *CleanCmd) Run(_ *Global, root *CLI) error {
	// The destination folder comes from the config when one is present;
	// without a config file the documented default is cleaned.
	destination := "site_contents"
	if cfg, err := config.Load(root.Config); err == nil {
		destination = cfg.ContentMapping.DestinationFolder
	}

	for _, dir := range []string{SourceRepoDir, destination} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
		fmt.Printf("Removed %s directory.\n", dir)
	}
	return nil
}
