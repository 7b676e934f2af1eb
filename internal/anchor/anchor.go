// Package anchor derives URL-safe fragment identifiers from display names.
package anchor

import (
	"regexp"
	"strings"
)

// EntryPrefix namespaces entry anchors away from category anchors so a
// builtin named like a category cannot collide with its own section.
const EntryPrefix = "fn-"

var unsafe = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Make maps a display name to an anchor: every character outside
// [a-zA-Z0-9_-] becomes '-', the result is lowercased and stripped of
// leading and trailing dashes. Make is idempotent, so an anchor fed back
// in comes out unchanged.
func Make(name string) string {
	return strings.Trim(strings.ToLower(unsafe.ReplaceAllString(name, "-")), "-")
}

// ForEntry returns the anchor for a documented entry name.
func ForEntry(name string) string {
	return Make(EntryPrefix + name)
}
