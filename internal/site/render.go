// Package site renders a grouped documentation catalog as one
// self-contained HTML page: inline styles, inline behavior, no build-time
// assets. Rendering is a pure function of the catalog and branding, so
// identical inputs produce byte-identical pages.
package site

import (
	"bytes"
	"fmt"
	"html"
	htmltemplate "html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/lattice-lang/tools/internal/anchor"
	"github.com/lattice-lang/tools/internal/catalog"
	"github.com/lattice-lang/tools/internal/logfields"
	"github.com/lattice-lang/tools/internal/signature"
	"github.com/lattice-lang/tools/internal/taxonomy"
)

// Branding carries the strings rendered into the page chrome.
type Branding struct {
	SiteName      string
	Title         string
	Description   string
	HomeURL       string
	PlaygroundURL string
	RepoURL       string
}

// Renderer produces the documentation page.
type Renderer struct {
	tax   taxonomy.Taxonomy
	brand Branding
	intro []byte
}

// NewRenderer creates a renderer for the given layout and branding.
func NewRenderer(tax taxonomy.Taxonomy, brand Branding) *Renderer {
	return &Renderer{tax: tax, brand: brand}
}

// SetIntro installs optional markdown rendered above the first category.
// The empty page keeps its built-in onboarding block instead.
func (r *Renderer) SetIntro(md []byte) { r.intro = md }

type pageData struct {
	Brand           Branding
	Empty           bool
	IntroHTML       htmltemplate.HTML
	Sections        []sectionData
	TotalEntries    int
	TotalCategories int
}

type sectionData struct {
	Name       string
	Categories []categoryData
}

type categoryData struct {
	Name    string
	Anchor  string
	Count   int
	Entries []entryData
}

type entryData struct {
	Anchor      string
	NameLower   string
	DescLower   string
	Signature   htmltemplate.HTML
	Description string
	Examples    []htmltemplate.HTML
}

var pageTmpl = htmltemplate.Must(htmltemplate.New("docs").Parse(pageTemplate))

// Render produces the complete document for a catalog.
func (r *Renderer) Render(cat *catalog.Catalog) ([]byte, error) {
	data := pageData{
		Brand:           r.brand,
		Empty:           cat.Empty(),
		Sections:        r.sections(cat),
		TotalEntries:    cat.TotalEntries(),
		TotalCategories: cat.TotalCategories(),
	}

	if len(r.intro) > 0 && !data.Empty {
		var buf bytes.Buffer
		if err := goldmark.Convert(r.intro, &buf); err != nil {
			slog.Warn("Skipping intro document, markdown conversion failed", logfields.Error(err))
		} else {
			data.IntroHTML = htmltemplate.HTML(buf.String())
		}
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// sections lays out the catalog for display: taxonomy sections first with
// only their non-empty categories, then one synthesized section for
// categories the taxonomy does not declare. Sections with nothing to show
// are omitted entirely.
func (r *Renderer) sections(cat *catalog.Catalog) []sectionData {
	var out []sectionData
	for _, sec := range r.tax.Sections {
		sd := sectionData{Name: sec.Name}
		for _, name := range sec.Categories {
			if len(cat.Entries(name)) == 0 {
				continue
			}
			sd.Categories = append(sd.Categories, r.category(cat, name))
		}
		if len(sd.Categories) > 0 {
			out = append(out, sd)
		}
	}

	if undeclared := cat.Undeclared(); len(undeclared) > 0 {
		sd := sectionData{Name: taxonomy.CatchAllSection}
		for _, name := range undeclared {
			sd.Categories = append(sd.Categories, r.category(cat, name))
		}
		out = append(out, sd)
	}
	return out
}

func (r *Renderer) category(cat *catalog.Catalog, name string) categoryData {
	entries := cat.Entries(name)
	cd := categoryData{
		Name:   name,
		Anchor: anchor.Make(name),
		Count:  len(entries),
	}
	for _, e := range entries {
		ed := entryData{
			Anchor:      anchor.ForEntry(e.Name),
			NameLower:   strings.ToLower(e.Name),
			DescLower:   strings.ToLower(e.Description),
			Signature:   signatureHTML(e.Signature),
			Description: e.Description,
		}
		for _, ex := range e.Examples {
			ed.Examples = append(ed.Examples, exampleHTML(ex))
		}
		cd.Entries = append(cd.Entries, ed)
	}
	return cd
}

// signatureHTML converts tokenizer output to styled spans. Plain tokens
// carry spacing between spans and stay unwrapped.
func signatureHTML(sig string) htmltemplate.HTML {
	var b strings.Builder
	for _, tok := range signature.Tokenize(sig) {
		text := html.EscapeString(tok.Text)
		if tok.Kind == signature.KindPlain {
			b.WriteString(text)
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(string(tok.Kind))
		b.WriteString(`">`)
		b.WriteString(text)
		b.WriteString(`</span>`)
	}
	return htmltemplate.HTML(b.String())
}

// exampleHTML styles the trailing line comment of an example, if any.
// The split is at the first "//" even when it sits inside a string
// literal, which keeps the rule predictable for authors.
func exampleHTML(example string) htmltemplate.HTML {
	if idx := strings.Index(example, "//"); idx >= 0 {
		return htmltemplate.HTML(
			html.EscapeString(example[:idx]) +
				`<span class="cmt">` + html.EscapeString(example[idx:]) + `</span>`)
	}
	return htmltemplate.HTML(html.EscapeString(example))
}

// WriteFile writes a rendered document, creating parent directories as
// needed. These are the only fatal failures of a documentation build.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCreateOutputDir, dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}
