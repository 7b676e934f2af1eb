package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lattice-lang/tools/cmd/latdoc/commands"
	"github.com/lattice-lang/tools/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("latdoc"),
		kong.Description("Generates the Lattice documentation page from doc comments in the interpreter sources."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String("latdoc")},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
