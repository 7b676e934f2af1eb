package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lattice-lang/tools/cmd/latbench/commands"
	"github.com/lattice-lang/tools/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("latbench"),
		kong.Description("Builds the Lattice interpreter, times its benchmark suite in both execution modes and records the medians per commit."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String("latbench")},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
