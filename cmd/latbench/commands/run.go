package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/lattice-lang/tools/internal/bench"
	"github.com/lattice-lang/tools/internal/config"
	"github.com/lattice-lang/tools/internal/gitinfo"
	"github.com/lattice-lang/tools/internal/logfields"
	"github.com/lattice-lang/tools/internal/metrics"
)

// RunCmd builds the interpreter, times every workload in both execution
// modes and records the medians. Results already recorded for the same
// commit and benchmark are left untouched, so re-runs on an unchanged
// checkout are free.
type RunCmd struct {
	SkipPull  bool `help:"Do not pull the repository before building"`
	SkipBuild bool `help:"Measure the existing binary without rebuilding"`
}

func (r *RunCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	bcfg := cfg.Bench

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("=== Lattice Benchmark Runner ===")

	if bcfg.Pull && !r.SkipPull {
		fmt.Println("Pulling latest source...")
		if err := gitinfo.Pull(ctx, bcfg.RepoDir); err != nil {
			return fmt.Errorf("pull: %w", err)
		}
	}

	if !r.SkipBuild && bcfg.BuildCommand != "" {
		fmt.Println("Building...")
		if err := runBuildCommand(ctx, bcfg.RepoDir, bcfg.BuildCommand); err != nil {
			return err
		}
	}

	commit, err := gitinfo.Commit(bcfg.RepoDir)
	if err != nil {
		return fmt.Errorf("resolve commit: %w", err)
	}
	version, err := gitinfo.Version(resolve(bcfg.RepoDir, bcfg.VersionHeader))
	if err != nil {
		slog.Warn("Could not read version header",
			logfields.File(bcfg.VersionHeader), logfields.Error(err))
	}
	platform := gitinfo.Platform()
	fmt.Printf("Commit: %s  Version: %s  Platform: %s\n", commit, version, platform)

	var rec metrics.Recorder = metrics.NoopRecorder{}
	prec, dump := newRecorder(bcfg.MetricsFile)
	if prec != nil {
		rec = prec
	}

	store, err := bench.NewSQLiteStore(resolve(bcfg.RepoDir, bcfg.Database))
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	// Publishing is best effort: a dashboard being down must not cost a
	// measurement.
	var publisher *bench.Publisher
	if bcfg.NATS.URL != "" {
		publisher, err = bench.NewPublisher(bcfg.NATS.URL, bcfg.NATS.Subject)
		if err != nil {
			slog.Warn("NATS unavailable, results stay local", logfields.Error(err))
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	runner := bench.NewRunner(resolve(bcfg.RepoDir, bcfg.Interpreter), resolve(bcfg.RepoDir, bcfg.Dir), bcfg.Runs, rec)
	runID := uuid.NewString()

	inserted := 0
	skipped := 0
	for _, c := range suite(bcfg.Benchmarks) {
		fmt.Printf("  Running: %s...\n", c.Label)

		m, err := runner.Measure(ctx, c)
		if errors.Is(err, bench.ErrWorkloadMissing) {
			slog.Warn("Workload file not found, skipping", logfields.Benchmark(c.Name))
			rec.IncBenchOutcome(metrics.OutcomeSkipped)
			continue
		}
		if err != nil {
			rec.IncBenchOutcome(metrics.OutcomeFailed)
			return fmt.Errorf("measure %s: %w", c.Name, err)
		}

		speedup := m.Speedup()
		fmt.Printf("    TW=%vms  BC=%vms  Speedup=%vx\n", m.TreeWalkMS, m.BytecodeMS, speedup)

		result := bench.Result{
			RunID:      runID,
			Commit:     commit,
			Version:    version,
			Benchmark:  c.Label,
			TreeWalkMS: m.TreeWalkMS,
			BytecodeMS: m.BytecodeMS,
			Speedup:    speedup,
			Platform:   platform,
			RecordedAt: time.Now().UTC(),
		}
		ok, err := store.Record(ctx, result)
		if err != nil {
			rec.IncBenchOutcome(metrics.OutcomeFailed)
			return fmt.Errorf("record %s: %w", c.Label, err)
		}
		if !ok {
			skipped++
			rec.IncBenchOutcome(metrics.OutcomeDuplicate)
			continue
		}

		inserted++
		rec.IncBenchOutcome(metrics.OutcomeRecorded)
		if publisher != nil {
			if err := publisher.Publish(result); err != nil {
				slog.Warn("Failed to publish result",
					logfields.Benchmark(c.Label), logfields.Error(err))
			}
		}
	}

	fmt.Printf("Done: %d inserted, %d skipped (already recorded)\n", inserted, skipped)
	dump()
	return nil
}

// suite maps the configured workloads onto cases, falling back to the
// built-in suite when the config names none.
func suite(workloads []config.Workload) []bench.Case {
	if len(workloads) == 0 {
		return bench.DefaultSuite()
	}
	cases := make([]bench.Case, 0, len(workloads))
	for _, w := range workloads {
		label := w.Label
		if label == "" {
			label = w.Name
		}
		cases = append(cases, bench.Case{Name: w.Name, Label: label})
	}
	return cases
}

// runBuildCommand runs the configured build line through the shell in the
// repository directory, mirroring what a developer would type.
func runBuildCommand(ctx context.Context, dir, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			fmt.Fprint(os.Stderr, string(out))
		}
		return fmt.Errorf("build command %q: %w", command, err)
	}
	return nil
}
