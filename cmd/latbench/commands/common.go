package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/lattice-lang/tools/internal/logfields"
	"github.com/lattice-lang/tools/internal/metrics"
)

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition with global flags. Run is the
// default command, so a bare "latbench" performs one full
// pull-build-measure-record cycle.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"lattice-tools.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run    RunCmd    `cmd:"" default:"1" help:"Build the interpreter and record one benchmark run"`
	Daemon DaemonCmd `cmd:"" help:"Run benchmarks on a fixed schedule"`
	Recent RecentCmd `cmd:"" help:"Show recently recorded results"`
}

// AfterApply runs after flag parsing; set up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// resolve joins path onto the repository directory unless it is already
// absolute. All bench paths in the config are relative to repo_dir.
func resolve(repoDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(repoDir, path)
}

// newRecorder returns the run's recorder plus a dump function that writes
// the textfile when one is configured.
func newRecorder(metricsFile string) (*metrics.PrometheusRecorder, func()) {
	if metricsFile == "" {
		return nil, func() {}
	}
	rec := metrics.NewPrometheusRecorder(prom.NewRegistry())
	return rec, func() {
		if err := rec.WriteTextfile(metricsFile); err != nil {
			slog.Warn("Failed to write metrics textfile",
				logfields.File(metricsFile), logfields.Error(err))
		}
	}
}
