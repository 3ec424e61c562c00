package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/nodedocs/cmd/nodedocs/commands"
	derrors "git.home.luguber.info/inful/nodedocs/internal/errors"
	"git.home.luguber.info/inful/nodedocs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("nodedocs"),
		kong.Description("Generate static HTML reference pages from a JSON node description document."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	err := parser.Run(&commands.Global{Logger: slog.Default()}, cli)
	derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
