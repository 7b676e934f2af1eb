package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-lang/tools/internal/catalog"
	"github.com/lattice-lang/tools/internal/doccomment"
	"github.com/lattice-lang/tools/internal/taxonomy"
)

func testBranding() Branding {
	return Branding{
		SiteName:      "Lattice",
		Title:         "Documentation — Lattice",
		Description:   "Reference for the Lattice language.",
		HomeURL:       "/",
		PlaygroundURL: "playground.html",
		RepoURL:       "https://github.com/lattice-lang/lattice",
	}
}

func testCatalog(entries ...doccomment.Entry) *catalog.Catalog {
	return catalog.Build(taxonomy.Default(), entries)
}

func TestRender_CategorizedEntries_FullStructure(t *testing.T) {
	cat := testCatalog(
		doccomment.Entry{
			Kind:        doccomment.KindBuiltin,
			Name:        "abs",
			Signature:   "abs(x: Int) -> Int",
			Category:    "Math",
			Description: "Returns the absolute value of x.",
			Examples:    []string{`abs(-5)  // 5`},
		},
		doccomment.Entry{
			Kind:      doccomment.KindBuiltin,
			Name:      "typeof",
			Signature: "typeof(v: Any) -> String",
			Category:  "Core",
		},
	)

	out, err := NewRenderer(taxonomy.Default(), testBranding()).Render(cat)
	require.NoError(t, err)
	page := string(out)

	// Chrome
	require.Contains(t, page, "<title>Documentation — Lattice</title>")
	require.Contains(t, page, `<a href="/" class="doc-logo">Lattice</a>`)
	require.Contains(t, page, `<a href="playground.html" class="doc-btn">Playground</a>`)
	require.Contains(t, page, `<a href="https://github.com/lattice-lang/lattice" class="doc-btn">GitHub</a>`)

	// Sidebar
	require.Contains(t, page, `<div class="sidebar-heading">Language</div>`)
	require.Contains(t, page, `<div class="sidebar-heading">Standard Library</div>`)
	require.Contains(t, page, `<a href="#math" class="sidebar-link" data-cat="math">Math<span class="sidebar-count">1</span></a>`)
	require.Contains(t, page, `<a href="#core" class="sidebar-link" data-cat="core">Core<span class="sidebar-count">1</span></a>`)

	// Content cards
	require.Contains(t, page, `<div class="doc-category" id="math">`)
	require.Contains(t, page, `<div class="section-label">Standard Library</div>`)
	require.Contains(t, page, `<h2 class="section-title">Math</h2>`)
	require.Contains(t, page, `<div class="doc-entry" id="fn-abs" data-name="abs" data-desc="returns the absolute value of x.">`)
	require.Contains(t, page, `<p class="doc-desc">Returns the absolute value of x.</p>`)

	// Tokenized signature
	require.Contains(t, page,
		`<span class="fn">abs</span><span class="text">(</span><span class="text">x</span><span class="op">:</span> <span class="typ">Int</span><span class="text">)</span> <span class="op">-&gt;</span> <span class="typ">Int</span>`)

	// Example with highlighted comment
	require.Contains(t, page, `<pre><code>abs(-5)  <span class="cmt">// 5</span></code></pre>`)

	// Stats
	require.Contains(t, page, `<div class="doc-stats">2 functions across 2 categories</div>`)

	// Taxonomy order: Language section before Standard Library in content
	require.Less(t,
		strings.Index(page, `<div class="doc-category" id="core">`),
		strings.Index(page, `<div class="doc-category" id="math">`))

	// No empty state on a populated page
	require.NotContains(t, page, "No Documentation Yet")
}

func TestRender_EmptyCatalog_EmptyState(t *testing.T) {
	out, err := NewRenderer(taxonomy.Default(), testBranding()).Render(testCatalog())
	require.NoError(t, err)
	page := string(out)

	require.Contains(t, page, "No Documentation Yet")
	require.Contains(t, page, `<div class="sidebar-empty">Add doc comments to source files to see categories here.</div>`)
	require.Contains(t, page, `<div class="doc-stats">0 functions across 0 categories</div>`)
	require.NotContains(t, page, `<div class="doc-category"`)
}

func TestRender_UndeclaredCategory_RenderedUnderCatchAll(t *testing.T) {
	cat := testCatalog(doccomment.Entry{
		Kind:      doccomment.KindBuiltin,
		Name:      "weave",
		Signature: "weave(a: Any) -> Any",
		Category:  "Quantum",
	})

	out, err := NewRenderer(taxonomy.Default(), testBranding()).Render(cat)
	require.NoError(t, err)
	page := string(out)

	require.Contains(t, page, `<div class="sidebar-heading">Other</div>`)
	require.Contains(t, page, `<div class="doc-category" id="quantum">`)
	require.Contains(t, page, `<div class="section-label">Other</div>`)
	require.Contains(t, page, `<h2 class="section-title">Quantum</h2>`)
	require.Contains(t, page, `<div class="doc-stats">1 functions across 1 categories</div>`)
}

func TestRender_DescriptionAndAttributesEscaped(t *testing.T) {
	cat := testCatalog(doccomment.Entry{
		Kind:        doccomment.KindBuiltin,
		Name:        "sneak",
		Signature:   "sneak()",
		Category:    "Core",
		Description: `Injects <script>alert("x")</script> & friends.`,
	})

	out, err := NewRenderer(taxonomy.Default(), testBranding()).Render(cat)
	require.NoError(t, err)
	page := string(out)

	require.NotContains(t, page, `<script>alert("x")</script>`)
	require.Contains(t, page, "&lt;script&gt;")
}

func TestRender_SameCatalogTwice_ByteIdentical(t *testing.T) {
	entries := []doccomment.Entry{
		{Kind: doccomment.KindBuiltin, Name: "abs", Signature: "abs(x: Int) -> Int", Category: "Math"},
		{Kind: doccomment.KindMethod, Name: "upper", Signature: "upper() -> String", Category: "String Methods"},
		{Kind: doccomment.KindBuiltin, Name: "weave", Signature: "weave()", Category: "Quantum"},
	}

	first, err := NewRenderer(taxonomy.Default(), testBranding()).Render(catalog.Build(taxonomy.Default(), entries))
	require.NoError(t, err)
	second, err := NewRenderer(taxonomy.Default(), testBranding()).Render(catalog.Build(taxonomy.Default(), entries))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRender_IntroMarkdown_RenderedAboveCategories(t *testing.T) {
	r := NewRenderer(taxonomy.Default(), testBranding())
	r.SetIntro([]byte("# Getting Started\n\nRun `clat` to open the REPL.\n"))

	cat := testCatalog(doccomment.Entry{
		Kind: doccomment.KindBuiltin, Name: "abs", Signature: "abs(x)", Category: "Math",
	})
	out, err := r.Render(cat)
	require.NoError(t, err)
	page := string(out)

	require.Contains(t, page, `<div class="doc-intro">`)
	require.Contains(t, page, "<h1>Getting Started</h1>")
	require.Less(t, strings.Index(page, `<div class="doc-intro">`), strings.Index(page, `<div class="doc-category"`))
}

func TestRender_IntroIgnoredOnEmptyPage(t *testing.T) {
	r := NewRenderer(taxonomy.Default(), testBranding())
	r.SetIntro([]byte("# Intro"))

	out, err := r.Render(testCatalog())
	require.NoError(t, err)
	require.NotContains(t, string(out), `<div class="doc-intro">`)
}

func TestRender_OptionalButtonsOmittedWhenUnset(t *testing.T) {
	brand := testBranding()
	brand.PlaygroundURL = ""
	brand.RepoURL = ""

	out, err := NewRenderer(taxonomy.Default(), brand).Render(testCatalog())
	require.NoError(t, err)
	page := string(out)

	require.NotContains(t, page, "Playground")
	require.NotContains(t, page, "GitHub")
	require.Contains(t, page, `class="doc-btn">Home</a>`)
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "nested", "docs.html")
	require.NoError(t, WriteFile(path, []byte("<html></html>")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<html></html>", string(data))
}
