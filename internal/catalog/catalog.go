// Package catalog groups documentation entries by category for rendering.
package catalog

import (
	"github.com/lattice-lang/tools/internal/doccomment"
	"github.com/lattice-lang/tools/internal/taxonomy"
)

// Catalog holds entries grouped by category. Category order is decided at
// build time and never changes afterwards: taxonomy categories first, in
// taxonomy order, then undeclared categories in order of first appearance.
// Categories that end up empty are dropped.
type Catalog struct {
	tax    taxonomy.Taxonomy
	order  []string
	groups map[string][]doccomment.Entry
}

// Build groups entries under the given taxonomy. Entries without a
// category land in taxonomy.DefaultCategory; entries naming a category
// the taxonomy does not declare keep it, creating the group on demand.
// Entry order within a group follows input order, so output is a pure
// function of the input sequence.
func Build(tax taxonomy.Taxonomy, entries []doccomment.Entry) *Catalog {
	groups := make(map[string][]doccomment.Entry)
	var order []string

	for _, cat := range tax.Categories() {
		groups[cat] = nil
		order = append(order, cat)
	}

	for _, e := range entries {
		cat := e.Category
		if cat == "" {
			cat = taxonomy.DefaultCategory
		}
		if _, ok := groups[cat]; !ok {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], e)
	}

	c := &Catalog{tax: tax, groups: make(map[string][]doccomment.Entry)}
	for _, cat := range order {
		if len(groups[cat]) == 0 {
			continue
		}
		c.order = append(c.order, cat)
		c.groups[cat] = groups[cat]
	}
	return c
}

// Taxonomy returns the layout the catalog was built against.
func (c *Catalog) Taxonomy() taxonomy.Taxonomy { return c.tax }

// Categories returns the non-empty category names in display order.
func (c *Catalog) Categories() []string { return c.order }

// Entries returns the entries of one category in input order.
func (c *Catalog) Entries(category string) []doccomment.Entry {
	return c.groups[category]
}

// Undeclared returns categories present in the catalog but absent from
// the taxonomy, in order of first appearance.
func (c *Catalog) Undeclared() []string {
	var out []string
	for _, cat := range c.order {
		if !c.tax.Declares(cat) {
			out = append(out, cat)
		}
	}
	return out
}

// TotalEntries counts entries across all categories.
func (c *Catalog) TotalEntries() int {
	n := 0
	for _, es := range c.groups {
		n += len(es)
	}
	return n
}

// TotalCategories counts non-empty categories.
func (c *Catalog) TotalCategories() int { return len(c.order) }

// Empty reports whether the catalog holds no entries at all.
func (c *Catalog) Empty() bool { return len(c.order) == 0 }
