package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/lattice-lang/tools/internal/metrics"
)

// Execution mode labels. Tree-walk is the interpreter's fallback
// evaluator behind the --tree-walk flag; bytecode is its default VM.
const (
	ModeTreeWalk = "tree-walk"
	ModeBytecode = "bytecode"
)

// ErrWorkloadMissing marks a benchmark program absent from the bench
// directory. Runs skip such workloads instead of failing.
var ErrWorkloadMissing = errors.New("workload file not found")

// Measurement holds the per-mode medians for one workload.
type Measurement struct {
	TreeWalkMS float64
	BytecodeMS float64
}

// Speedup reports how many times faster the bytecode VM ran, rounded to
// two decimals. A non-positive bytecode median yields 0.
func (m Measurement) Speedup() float64 {
	if m.BytecodeMS <= 0 {
		return 0
	}
	return Round2(m.TreeWalkMS / m.BytecodeMS)
}

// Runner times single workloads against one interpreter binary.
type Runner struct {
	interpreter string
	dir         string
	runs        int
	rec         metrics.Recorder
}

// NewRunner creates a runner for the interpreter binary, taking workload
// programs from dir and timing each mode runs times.
func NewRunner(interpreter, dir string, runs int, rec metrics.Recorder) *Runner {
	if runs <= 0 {
		runs = 3
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Runner{interpreter: interpreter, dir: dir, runs: runs, rec: rec}
}

// Measure times c in both modes, alternating run by run the way a human
// at a shell would, and returns the medians. A missing workload file is
// reported as ErrWorkloadMissing.
func (r *Runner) Measure(ctx context.Context, c Case) (Measurement, error) {
	path := filepath.Join(r.dir, c.Name+".lat")
	if _, err := os.Stat(path); err != nil {
		return Measurement{}, fmt.Errorf("%w: %s", ErrWorkloadMissing, path)
	}

	tw := make([]float64, 0, r.runs)
	bc := make([]float64, 0, r.runs)
	for i := 0; i < r.runs; i++ {
		t, err := r.timeRun(ctx, c.Name, ModeTreeWalk, "--tree-walk", path)
		if err != nil {
			return Measurement{}, err
		}
		tw = append(tw, t)

		b, err := r.timeRun(ctx, c.Name, ModeBytecode, path)
		if err != nil {
			return Measurement{}, err
		}
		bc = append(bc, b)
	}

	return Measurement{TreeWalkMS: Median(tw), BytecodeMS: Median(bc)}, nil
}

// timeRun executes one interpreter invocation and returns its wall time
// in milliseconds, rounded to two decimals. A non-zero exit still counts
// as a timed run; only failing to start the binary is an error.
func (r *Runner) timeRun(ctx context.Context, benchmark, mode string, args ...string) (float64, error) {
	start := time.Now()
	cmd := exec.CommandContext(ctx, r.interpreter, args...)
	err := cmd.Run()
	elapsed := time.Since(start)

	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return 0, fmt.Errorf("run %s: %w", r.interpreter, err)
	}

	r.rec.ObserveBenchDuration(benchmark, mode, elapsed)
	return Round2(elapsed.Seconds() * 1000), nil
}

// Median returns the middle of values, averaging the two middles for an
// even count. An empty slice yields 0.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
