package commands

import (
	"github.com/lattice-lang/tools/internal/config"
	"github.com/lattice-lang/tools/internal/metrics"
	"github.com/lattice-lang/tools/internal/pipeline"
)

// BuildCmd generates the documentation page once.
type BuildCmd struct {
	Source string `arg:"" optional:"" help:"Source directory to scan (overrides config)"`
	Output string `arg:"" optional:"" help:"Output HTML file (overrides config)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	var rec metrics.Recorder
	prec, dump := newRecorder(cfg.Docs.MetricsFile)
	if prec != nil {
		rec = prec
	}

	if _, err := pipeline.Run(buildOptions(cfg, b.Source, b.Output, rec)); err != nil {
		return err
	}
	dump()
	return nil
}
