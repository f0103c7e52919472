package commands

import (
	"fmt"

	"git.home.luguber.info/inful/divisor/internal/config"
)

// ThemesCmd implements the 'themes' command.
type ThemesCmd struct{}

func (t *ThemesCmd) Run(_ *Global, _ *CLI) error {
	fmt.Println("Available themes:")
	for _, theme := range config.Themes {
		fmt.Printf("- %s\n", theme)
	}
	return nil
}
