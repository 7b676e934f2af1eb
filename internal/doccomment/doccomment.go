// Package doccomment extracts structured documentation blocks from
// interpreter source text. A block is a contiguous run of marker comment
// lines; the run opens on a line tagged @builtin or @method and absorbs
// every following marker line until the first non-marker line.
package doccomment

import "strings"

// Marker prefixes every line that belongs to a documentation block.
const Marker = "///"

// Tags recognized inside a block. The opening tag decides the entry kind;
// category and example tags may appear on any later line of the same block.
const (
	TagBuiltin  = "@builtin"
	TagMethod   = "@method"
	TagCategory = "@category"
	TagExample  = "@example"
)

// Kind distinguishes free functions from type methods.
type Kind string

const (
	KindBuiltin Kind = "builtin"
	KindMethod  Kind = "method"
)

// Entry is one documented builtin or method.
type Entry struct {
	Kind        Kind
	Name        string   // identifier portion of Signature, before the first '('
	Signature   string   // declaration as written, e.g. "abs(x: Int) -> Int"
	Category    string   // last @category payload in the block, or "" when absent
	Description string   // untagged payload lines joined with single spaces
	Examples    []string // one element per @example line, in block order
	SourceFile  string   // file the block came from, set by the scanner
}

// NameFromSignature returns the identifier before the first '(' of a raw
// signature, or the whole trimmed signature when it has no parameter list.
func NameFromSignature(sig string) string {
	if idx := strings.IndexByte(sig, '('); idx >= 0 {
		return strings.TrimSpace(sig[:idx])
	}
	return strings.TrimSpace(sig)
}

// Parse walks source text line by line and returns the entries of every
// documentation block, in order of appearance. Parsing never fails: text
// that matches no block shape produces no entries.
//
// The walk is a two-state automaton. Outside a block, only a marker line
// carrying @builtin or @method opens one. Inside a block, each marker line
// is classified as category, example, or description payload; the first
// non-marker line closes the block. A closing line is never itself a
// marker line, so it can be discarded without reprocessing.
func Parse(text string) []Entry {
	var (
		entries []Entry
		cur     *Entry
		desc    []string
	)

	flush := func() {
		if cur == nil {
			return
		}
		cur.Description = strings.Join(desc, " ")
		entries = append(entries, *cur)
		cur = nil
		desc = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if cur == nil {
			if !strings.HasPrefix(line, Marker) {
				continue
			}
			payload := strings.TrimSpace(strings.TrimPrefix(line, Marker))
			switch {
			case strings.Contains(payload, TagBuiltin):
				cur = &Entry{
					Kind:      KindBuiltin,
					Signature: strings.TrimSpace(strings.ReplaceAll(payload, TagBuiltin, "")),
				}
			case strings.Contains(payload, TagMethod):
				cur = &Entry{
					Kind:      KindMethod,
					Signature: strings.TrimSpace(strings.ReplaceAll(payload, TagMethod, "")),
				}
			default:
				// A marker line without an opening tag never starts a block.
				continue
			}
			cur.Name = NameFromSignature(cur.Signature)
			continue
		}

		if !strings.HasPrefix(line, Marker) {
			flush()
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, Marker))
		switch {
		case strings.HasPrefix(payload, TagCategory):
			// Repeated category lines are allowed; the last one wins.
			cur.Category = strings.TrimSpace(strings.ReplaceAll(payload, TagCategory, ""))
		case strings.HasPrefix(payload, TagExample):
			cur.Examples = append(cur.Examples, strings.TrimSpace(strings.ReplaceAll(payload, TagExample, "")))
		case payload != "":
			desc = append(desc, payload)
		}
	}
	flush()

	return entries
}
