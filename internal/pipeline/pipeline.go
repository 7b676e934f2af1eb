// Package pipeline drives a full documentation build: scan the source
// tree, group the entries by taxonomy, render the page, verify its anchor
// graph and write the result. Each stage is timed and classified through a
// metrics.Recorder so builds can be observed without the stages knowing how.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lattice-lang/tools/internal/catalog"
	"github.com/lattice-lang/tools/internal/doccomment"
	"github.com/lattice-lang/tools/internal/logfields"
	"github.com/lattice-lang/tools/internal/metrics"
	"github.com/lattice-lang/tools/internal/site"
	"github.com/lattice-lang/tools/internal/sitecheck"
	"github.com/lattice-lang/tools/internal/source"
	"github.com/lattice-lang/tools/internal/taxonomy"
)

// Stage names used for metric labels and log fields.
const (
	StageScan       = "scan"
	StageCategorize = "categorize"
	StageRender     = "render"
	StageVerify     = "verify"
	StageWrite      = "write"
)

// Options configures one documentation build.
type Options struct {
	// SourceDir is the interpreter source tree to scan.
	SourceDir string
	// Patterns are doublestar globs relative to SourceDir. Empty means
	// source.DefaultPatterns.
	Patterns []string
	// Output is the path of the generated HTML page.
	Output string
	// Taxonomy controls section grouping and category order. A taxonomy
	// without sections falls back to taxonomy.Default.
	Taxonomy taxonomy.Taxonomy
	// Branding fills in the page chrome.
	Branding site.Branding
	// IntroPath optionally names a markdown file rendered above the first
	// category.
	IntroPath string
	// Recorder receives stage metrics. Nil disables metrics.
	Recorder metrics.Recorder
	// Progress receives the human readable build output. Nil means stdout.
	Progress io.Writer
}

// Summary describes a finished build.
type Summary struct {
	Entries    int
	Categories int
	Output     string
	Report     *sitecheck.Report
}

// Run executes a full build and returns its summary. Unreadable files,
// categories outside the taxonomy and anchor problems degrade to logged
// warnings; only a bad glob pattern, a template failure or an unwritable
// output fail the build.
func Run(opts Options) (*Summary, error) {
	start := time.Now()
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	progress := opts.Progress
	if progress == nil {
		progress = os.Stdout
	}
	tax := opts.Taxonomy
	if len(tax.Sections) == 0 {
		tax = taxonomy.Default()
	}
	b := &build{rec: rec}

	fmt.Fprintf(progress, "Scanning source files in: %s\n", opts.SourceDir)

	var entries []doccomment.Entry
	err := b.stage(StageScan, func() (metrics.ResultLabel, error) {
		var err error
		entries, err = source.NewScanner(opts.SourceDir, opts.Patterns...).Scan()
		if err != nil {
			return metrics.ResultFatal, err
		}
		return metrics.ResultSuccess, nil
	})
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(progress, "Found %d documented entries\n", len(entries))

	var cat *catalog.Catalog
	_ = b.stage(StageCategorize, func() (metrics.ResultLabel, error) {
		cat = catalog.Build(tax, entries)
		result := metrics.ResultSuccess
		for _, name := range cat.Undeclared() {
			slog.Warn("Category not declared in taxonomy, rendering under catch-all section",
				logfields.Category(name))
			result = metrics.ResultWarning
		}
		return result, nil
	})
	rec.SetEntriesTotal(cat.TotalEntries())
	rec.SetCategoriesTotal(cat.TotalCategories())
	if !cat.Empty() {
		fmt.Fprintf(progress, "Categories: %s\n", strings.Join(cat.Categories(), ", "))
	}

	renderer := site.NewRenderer(tax, opts.Branding)
	if opts.IntroPath != "" {
		md, err := os.ReadFile(opts.IntroPath)
		if err != nil {
			slog.Warn("Skipping unreadable intro file",
				logfields.File(opts.IntroPath), logfields.Error(err))
		} else {
			renderer.SetIntro(md)
		}
	}

	var page []byte
	err = b.stage(StageRender, func() (metrics.ResultLabel, error) {
		var err error
		page, err = renderer.Render(cat)
		if err != nil {
			return metrics.ResultFatal, err
		}
		return metrics.ResultSuccess, nil
	})
	if err != nil {
		return nil, err
	}

	report := &sitecheck.Report{}
	_ = b.stage(StageVerify, func() (metrics.ResultLabel, error) {
		checked, err := sitecheck.Verify(page)
		if err != nil {
			slog.Warn("Skipping anchor verification", logfields.Error(err))
			return metrics.ResultWarning, nil
		}
		report = checked
		for _, target := range report.MissingTargets {
			slog.Warn("Link points at a missing anchor", logfields.Anchor(target))
		}
		for _, id := range report.DuplicateIDs {
			slog.Warn("Duplicate element id on page", logfields.Anchor(id))
		}
		if !report.Clean() {
			return metrics.ResultWarning, nil
		}
		return metrics.ResultSuccess, nil
	})

	err = b.stage(StageWrite, func() (metrics.ResultLabel, error) {
		if err := site.WriteFile(opts.Output, page); err != nil {
			return metrics.ResultFatal, err
		}
		return metrics.ResultSuccess, nil
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(progress, "Generated: %s\n", opts.Output)
	fmt.Fprintf(progress, "  %d functions across %d categories\n",
		cat.TotalEntries(), cat.TotalCategories())

	elapsed := time.Since(start)
	rec.ObserveBuildDuration(elapsed)
	slog.Info("Documentation build complete",
		logfields.Output(opts.Output),
		logfields.Count(cat.TotalEntries()),
		logfields.DurationMS(float64(elapsed.Milliseconds())))

	return &Summary{
		Entries:    cat.TotalEntries(),
		Categories: cat.TotalCategories(),
		Output:     opts.Output,
		Report:     report,
	}, nil
}

// build carries the per-run state shared by the stage helper.
type build struct {
	rec metrics.Recorder
}

// stage times fn, records its duration and result, and passes its error up.
func (b *build) stage(name string, fn func() (metrics.ResultLabel, error)) error {
	t0 := time.Now()
	result, err := fn()
	b.rec.ObserveStageDuration(name, time.Since(t0))
	b.rec.IncStageResult(name, result)
	return err
}
