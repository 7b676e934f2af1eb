package integration

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-lang/tools/internal/pipeline"
	"github.com/lattice-lang/tools/internal/site"
)

// TestBuild_FullTree_RendersStructuredPage builds documentation from a
// small interpreter tree and checks the rendered page end to end.
// This test verifies:
// - Nested source directories are picked up by doublestar patterns
// - Categories land under their taxonomy sections in declared order
// - Sidebar links carry anchors and per-category entry counts
// - Signatures and example comments are token styled
// - The anchor graph of the finished page is internally consistent.
func TestBuild_FullTree_RendersStructuredPage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping build test in short mode")
	}

	src := writeTree(t, map[string]string{
		"core.c":      coreSource,
		"math/math.c": mathSource,
	})
	out := filepath.Join(t.TempDir(), "docs", "index.html")

	var progress bytes.Buffer
	sum, err := pipeline.Run(pipeline.Options{
		SourceDir: src,
		Patterns:  []string{"**/*.c"},
		Output:    out,
		Branding:  site.Branding{SiteName: "Lattice", Title: "Lattice Documentation"},
		Progress:  &progress,
	})
	require.NoError(t, err)
	require.Equal(t, 4, sum.Entries)
	require.Equal(t, 3, sum.Categories)
	require.NotNil(t, sum.Report)
	require.True(t, sum.Report.Clean(), "missing=%v duplicates=%v",
		sum.Report.MissingTargets, sum.Report.DuplicateIDs)

	require.Contains(t, progress.String(), "Found 4 documented entries\n")
	require.Contains(t, progress.String(), "Categories: Core, Math, Array Methods\n")

	page := readOutput(t, out)

	// Each category opens with its section label and title.
	require.Contains(t, page, "<div class=\"doc-category\" id=\"core\">\n"+
		"      <div class=\"section-label\">Language</div>\n"+
		"      <h2 class=\"section-title\">Core</h2>")
	require.Contains(t, page, "<div class=\"doc-category\" id=\"math\">\n"+
		"      <div class=\"section-label\">Standard Library</div>\n"+
		"      <h2 class=\"section-title\">Math</h2>")
	require.Contains(t, page, "<div class=\"doc-category\" id=\"array-methods\">\n"+
		"      <div class=\"section-label\">Type Methods</div>\n"+
		"      <h2 class=\"section-title\">Array Methods</h2>")

	// Sidebar navigation with per-category counts.
	require.Contains(t, page,
		`<a href="#core" class="sidebar-link" data-cat="core">Core<span class="sidebar-count">2</span></a>`)
	require.Contains(t, page,
		`<a href="#math" class="sidebar-link" data-cat="math">Math<span class="sidebar-count">1</span></a>`)
	require.Contains(t, page,
		`<a href="#array-methods" class="sidebar-link" data-cat="array-methods">Array Methods<span class="sidebar-count">1</span></a>`)
	require.Contains(t, page, `<div class="doc-stats">4 functions across 3 categories</div>`)

	// Every entry gets a stable anchor.
	for _, id := range []string{"fn-print", "fn-len", "fn-sqrt", "fn-push"} {
		require.Contains(t, page, fmt.Sprintf(`id="%s"`, id))
	}

	// Signature tokens: name, parameter pair, arrow, return type.
	require.Contains(t, page,
		`<span class="fn">sqrt</span><span class="text">(</span>`+
			`<span class="text">x</span><span class="op">:</span> <span class="typ">Float</span>`+
			`<span class="text">)</span> <span class="op">-&gt;</span> <span class="typ">Float</span>`)

	// Example line comments are styled separately from the code.
	require.Contains(t, page, `sqrt(16.0)  <span class="cmt">// 4.0</span>`)

	// Sections appear in taxonomy order.
	core := strings.Index(page, `<div class="doc-category" id="core">`)
	math := strings.Index(page, `<div class="doc-category" id="math">`)
	push := strings.Index(page, `<div class="doc-category" id="array-methods">`)
	require.True(t, core < math && math < push,
		"section order core=%d math=%d array-methods=%d", core, math, push)
}

// TestBuild_UncategorizedMethod_LandsInCore covers the default category.
// This test verifies:
// - A block without @category is grouped under Core
// - Core renders under Language, the categorized entry under its section
// - Footer counts reflect both categories.
func TestBuild_UncategorizedMethod_LandsInCore(t *testing.T) {
	src := writeTree(t, map[string]string{
		"math.c": `/// @builtin sqrt(x: Float) -> Float
/// @category Math
/// Returns the square root of x.
double lat_sqrt(double x);
`,
		"string.c": `/// @method trim() -> String
/// Removes leading and trailing whitespace.
LatValue lat_string_trim(LatValue s);
`,
	})
	out := filepath.Join(t.TempDir(), "index.html")

	sum, err := pipeline.Run(pipeline.Options{
		SourceDir: src,
		Output:    out,
		Progress:  io.Discard,
	})
	require.NoError(t, err)
	require.Equal(t, 2, sum.Entries)
	require.Equal(t, 2, sum.Categories)

	page := readOutput(t, out)
	require.Contains(t, page, "<div class=\"doc-category\" id=\"core\">\n"+
		"      <div class=\"section-label\">Language</div>")
	require.Contains(t, page, "<div class=\"doc-category\" id=\"math\">\n"+
		"      <div class=\"section-label\">Standard Library</div>")
	require.Contains(t, page, `id="fn-trim"`)
	require.Contains(t, page, `<div class="doc-stats">2 functions across 2 categories</div>`)
}

// TestBuild_RepeatedRuns_ByteIdentical verifies deterministic output.
// This test verifies:
// - Two builds of the same tree produce byte identical pages.
func TestBuild_RepeatedRuns_ByteIdentical(t *testing.T) {
	src := writeTree(t, map[string]string{
		"core.c":      coreSource,
		"math/math.c": mathSource,
	})

	render := func(out string) string {
		_, err := pipeline.Run(pipeline.Options{
			SourceDir: src,
			Patterns:  []string{"**/*.c"},
			Output:    out,
			Progress:  io.Discard,
		})
		require.NoError(t, err)
		return readOutput(t, out)
	}

	first := render(filepath.Join(t.TempDir(), "index.html"))
	second := render(filepath.Join(t.TempDir(), "index.html"))
	require.Equal(t, first, second)
}

// TestBuild_TreeWithoutDocComments_RendersEmptyState covers a source tree
// that compiles but documents nothing.
// This test verifies:
// - The build succeeds with zero entries
// - The page shows the onboarding empty state instead of categories.
func TestBuild_TreeWithoutDocComments_RendersEmptyState(t *testing.T) {
	src := writeTree(t, map[string]string{
		"main.c": "#include \"lattice.h\"\n\nint main(void) { return 0; }\n",
	})
	out := filepath.Join(t.TempDir(), "index.html")

	sum, err := pipeline.Run(pipeline.Options{
		SourceDir: src,
		Output:    out,
		Progress:  io.Discard,
	})
	require.NoError(t, err)
	require.Zero(t, sum.Entries)

	page := readOutput(t, out)
	require.Contains(t, page, "No Documentation Yet")
	require.Contains(t, page, `<div class="doc-stats">0 functions across 0 categories</div>`)
	require.NotContains(t, page, `class="doc-category"`)
}

// TestBuild_UndeclaredCategory_RenderedAfterDeclaredSections covers entries
// whose category the taxonomy does not know.
// This test verifies:
// - The category still renders, grouped under the catch-all section
// - It appears after every declared section on the page.
func TestBuild_UndeclaredCategory_RenderedAfterDeclaredSections(t *testing.T) {
	src := writeTree(t, map[string]string{
		"math/math.c": mathSource,
		"quantum.c": `/// @builtin warp(q: Qubit) -> Qubit
/// @category Quantum
/// Applies a warp gate.
LatValue lat_warp(LatValue q);
`,
	})
	out := filepath.Join(t.TempDir(), "index.html")

	sum, err := pipeline.Run(pipeline.Options{
		SourceDir: src,
		Patterns:  []string{"**/*.c"},
		Output:    out,
		Progress:  io.Discard,
	})
	require.NoError(t, err)
	require.Equal(t, 3, sum.Categories)

	page := readOutput(t, out)
	require.Contains(t, page, "<div class=\"doc-category\" id=\"quantum\">\n"+
		"      <div class=\"section-label\">Other</div>")

	last := strings.LastIndex(page, `<div class="doc-category" id=`)
	quantum := strings.Index(page, `<div class="doc-category" id="quantum">`)
	require.Equal(t, last, quantum, "catch-all category must close the page")
}
