package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/lattice-lang/tools/internal/config"
	"github.com/lattice-lang/tools/internal/logfields"
	"github.com/lattice-lang/tools/internal/metrics"
	"github.com/lattice-lang/tools/internal/pipeline"
	"github.com/lattice-lang/tools/internal/site"
)

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition with global flags. Build is the
// default command so the bare "latdoc [source] [output]" invocation keeps
// working.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"lattice-tools.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"withargs" help:"Generate the documentation page from interpreter sources"`
	Watch WatchCmd `cmd:"" help:"Rebuild the page whenever the source tree changes"`
	Serve ServeCmd `cmd:"" help:"Build the page and serve it over HTTP"`
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

// buildOptions maps the docs config block, with optional positional
// overrides, onto pipeline options.
func buildOptions(cfg *config.Config, source, output string, rec metrics.Recorder) pipeline.Options {
	docs := cfg.Docs
	if source != "" {
		docs.SourceDir = source
	}
	if output != "" {
		docs.Output = output
	}
	return pipeline.Options{
		SourceDir: docs.SourceDir,
		Patterns:  docs.Patterns,
		Output:    docs.Output,
		Branding: site.Branding{
			SiteName:      docs.Site.Name,
			Title:         docs.Site.Title,
			Description:   docs.Site.Description,
			HomeURL:       docs.Site.HomeURL,
			PlaygroundURL: docs.Site.PlaygroundURL,
			RepoURL:       docs.Site.RepoURL,
		},
		IntroPath: docs.IntroFile,
		Recorder:  rec,
	}
}

// newRecorder returns the recorder for a build plus a dump function that
// writes the textfile after each build when one is configured.
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
