package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lattice-lang/tools/internal/metrics"
	"github.com/lattice-lang/tools/internal/source"
)

const mathSource = `/// @builtin sqrt(x: Float) -> Float
/// @category Math
/// Returns the square root of x.
double lat_sqrt(double x) { return sqrt(x); }

/// @builtin print(value: Any)
/// @category Core
/// Writes value to standard output.
void lat_print(LatValue value);
`

func writeSourceTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestRun_DocumentedTree_GeneratesPage(t *testing.T) {
	src := writeSourceTree(t, map[string]string{"math.c": mathSource})
	out := filepath.Join(t.TempDir(), "site", "docs.html")
	var progress bytes.Buffer

	summary, err := Run(Options{SourceDir: src, Output: out, Progress: &progress})
	require.NoError(t, err)

	require.Equal(t, 2, summary.Entries)
	require.Equal(t, 2, summary.Categories)
	require.Equal(t, out, summary.Output)
	require.True(t, summary.Report.Clean())

	want := fmt.Sprintf(`Scanning source files in: %s
Found 2 documented entries
Categories: Core, Math
Generated: %s
  2 functions across 2 categories
`, src, out)
	require.Equal(t, want, progress.String())

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(page), `id="fn-sqrt"`)
	require.Contains(t, string(page), `id="fn-print"`)
}

func TestRun_UndeclaredCategory_RendersCatchAll(t *testing.T) {
	src := writeSourceTree(t, map[string]string{"quantum.c": `/// @builtin warp(t: Time)
/// @category Quantum
/// Bends time around the caller.
`})
	out := filepath.Join(t.TempDir(), "docs.html")
	rec := newFakeRecorder()

	summary, err := Run(Options{SourceDir: src, Output: out, Recorder: rec, Progress: &bytes.Buffer{}})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Entries)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(page), `id="quantum"`)
	require.Contains(t, string(page), ">Other<")

	require.Equal(t, []metrics.ResultLabel{metrics.ResultWarning}, rec.results[StageCategorize])
}

func TestRun_MissingSourceDir_WritesEmptyState(t *testing.T) {
	out := filepath.Join(t.TempDir(), "docs.html")
	var progress bytes.Buffer

	summary, err := Run(Options{
		SourceDir: filepath.Join(t.TempDir(), "nope"),
		Output:    out,
		Progress:  &progress,
	})
	require.NoError(t, err)
	require.Equal(t, 0, summary.Entries)

	require.Contains(t, progress.String(), "Found 0 documented entries")
	require.NotContains(t, progress.String(), "Categories:")
	require.Contains(t, progress.String(), "  0 functions across 0 categories")

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(page), "No Documentation Yet")
}

func TestRun_BadPattern_FailsWithoutOutput(t *testing.T) {
	src := writeSourceTree(t, map[string]string{"math.c": mathSource})
	out := filepath.Join(t.TempDir(), "docs.html")

	_, err := Run(Options{
		SourceDir: src,
		Patterns:  []string{"["},
		Output:    out,
		Progress:  &bytes.Buffer{},
	})
	require.ErrorIs(t, err, source.ErrBadPattern)

	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}

func TestRun_IntroFile_RenderedOnPage(t *testing.T) {
	src := writeSourceTree(t, map[string]string{"math.c": mathSource})
	intro := filepath.Join(t.TempDir(), "intro.md")
	require.NoError(t, os.WriteFile(intro, []byte("# Getting Started\n\nInstall the interpreter first.\n"), 0o600))
	out := filepath.Join(t.TempDir(), "docs.html")

	_, err := Run(Options{SourceDir: src, Output: out, IntroPath: intro, Progress: &bytes.Buffer{}})
	require.NoError(t, err)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(page), "Getting Started")
	require.Contains(t, string(page), "Install the interpreter first.")
}

func TestRun_MissingIntroFile_BuildStillSucceeds(t *testing.T) {
	src := writeSourceTree(t, map[string]string{"math.c": mathSource})
	out := filepath.Join(t.TempDir(), "docs.html")

	summary, err := Run(Options{
		SourceDir: src,
		Output:    out,
		IntroPath: filepath.Join(t.TempDir(), "absent.md"),
		Progress:  &bytes.Buffer{},
	})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Entries)
}

func TestRun_Recorder_SeesEveryStage(t *testing.T) {
	src := writeSourceTree(t, map[string]string{"math.c": mathSource})
	out := filepath.Join(t.TempDir(), "docs.html")
	rec := newFakeRecorder()

	_, err := Run(Options{SourceDir: src, Output: out, Recorder: rec, Progress: &bytes.Buffer{}})
	require.NoError(t, err)

	for _, stage := range []string{StageScan, StageCategorize, StageRender, StageVerify, StageWrite} {
		require.Equal(t, []metrics.ResultLabel{metrics.ResultSuccess}, rec.results[stage], stage)
		require.Len(t, rec.durations[stage], 1, stage)
	}
	require.Equal(t, 2, rec.entriesTotal)
	require.Equal(t, 2, rec.categoriesTotal)
	require.True(t, rec.buildObserved)
}

// fakeRecorder captures recorder calls for assertions.
type fakeRecorder struct {
	results         map[string][]metrics.ResultLabel
	durations       map[string][]time.Duration
	entriesTotal    int
	categoriesTotal int
	buildObserved   bool
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{
		results:   make(map[string][]metrics.ResultLabel),
		durations: make(map[string][]time.Duration),
	}
}

func (f *fakeRecorder) ObserveStageDuration(stage string, d time.Duration) {
	f.durations[stage] = append(f.durations[stage], d)
}
func (f *fakeRecorder) ObserveBuildDuration(time.Duration) { f.buildObserved = true }
func (f *fakeRecorder) IncStageResult(stage string, result metrics.ResultLabel) {
	f.results[stage] = append(f.results[stage], result)
}
func (f *fakeRecorder) SetEntriesTotal(n int)                              { f.entriesTotal = n }
func (f *fakeRecorder) SetCategoriesTotal(n int)                           { f.categoriesTotal = n }
func (f *fakeRecorder) ObserveBenchDuration(string, string, time.Duration) {}
func (f *fakeRecorder) IncBenchOutcome(metrics.OutcomeLabel)               {}

var _ metrics.Recorder = (*fakeRecorder)(nil)
