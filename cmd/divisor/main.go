// Divisor creates Jekyll websites from Git repositories.
package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/divisor/cmd/divisor/commands"
	"git.home.luguber.info/inful/divisor/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("divisor"),
		kong.Description("Divisor is a tool for creating Jekyll websites from Git repositories."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{}, cli)
	ctx.FatalIfErrorf(err)
}
