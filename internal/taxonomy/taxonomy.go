// Package taxonomy declares the section and category layout of the
// documentation site. The layout is configuration, not scan output:
// section order, category order, and category-to-section assignment are
// fixed here so rendered pages keep a stable shape no matter which
// source files happen to carry entries.
package taxonomy

// DefaultCategory receives entries whose doc block has no category tag.
const DefaultCategory = "Core"

// CatchAllSection heads categories that entries declare but the taxonomy
// does not, so nothing recorded in source ever disappears from the page.
const CatchAllSection = "Other"

// Section groups related categories under one navigation heading.
type Section struct {
	Name       string
	Categories []string
}

// Taxonomy is an ordered list of sections. Treat values as immutable:
// share them freely, never mutate them after construction.
type Taxonomy struct {
	Sections []Section
}

// Default returns the documentation layout for the Lattice interpreter.
func Default() Taxonomy {
	return Taxonomy{Sections: []Section{
		{Name: "Language", Categories: []string{
			"Core",
			"Phase Transitions",
			"Type Constructors",
			"Type Conversion",
			"Error Handling",
		}},
		{Name: "Standard Library", Categories: []string{
			"Math",
			"String Formatting",
			"Regex",
			"JSON",
			"CSV",
			"URL",
			"Functional",
			"Metaprogramming",
		}},
		{Name: "System", Categories: []string{
			"File System",
			"Path",
			"Environment",
			"Process",
			"Date & Time",
			"Crypto",
			"Networking",
		}},
		{Name: "Type Methods", Categories: []string{
			"String Methods",
			"Array Methods",
			"Map Methods",
			"Channel Methods",
		}},
	}}
}

// Categories returns every category name in display order.
func (t Taxonomy) Categories() []string {
	var all []string
	for _, s := range t.Sections {
		all = append(all, s.Categories...)
	}
	return all
}

// Declares reports whether name is a category of any section.
func (t Taxonomy) Declares(name string) bool {
	for _, s := range t.Sections {
		for _, c := range s.Categories {
			if c == name {
				return true
			}
		}
	}
	return false
}
