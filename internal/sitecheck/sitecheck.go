// Package sitecheck validates the internal anchor graph of a rendered
// documentation page. Every sidebar link and cross reference points at a
// fragment on the same page, so a missing id means a dead link for the
// reader. Verify parses the page once and reports fragment hrefs without
// a matching id as well as ids that occur more than once.
package sitecheck

import (
	"bytes"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Report lists the anchor problems found on a page.
type Report struct {
	// MissingTargets holds fragment hrefs (without the leading '#') that
	// no element id on the page satisfies.
	MissingTargets []string
	// DuplicateIDs holds element ids declared more than once.
	DuplicateIDs []string
}

// Clean reports whether the page passed verification.
func (r *Report) Clean() bool {
	return len(r.MissingTargets) == 0 && len(r.DuplicateIDs) == 0
}

// Verify parses doc and checks every in-page fragment link against the
// set of element ids. Results are sorted and deduplicated.
func Verify(doc []byte) (*Report, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}

	ids := make(map[string]int)
	targets := make(map[string]struct{})

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := getAttr(n, "id"); id != "" {
				ids[id]++
			}
			if href := getAttr(n, "href"); strings.HasPrefix(href, "#") {
				if frag := strings.TrimPrefix(href, "#"); frag != "" {
					targets[frag] = struct{}{}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	report := &Report{}
	for frag := range targets {
		if _, ok := ids[frag]; !ok {
			report.MissingTargets = append(report.MissingTargets, frag)
		}
	}
	for id, count := range ids {
		if count > 1 {
			report.DuplicateIDs = append(report.DuplicateIDs, id)
		}
	}
	sort.Strings(report.MissingTargets)
	sort.Strings(report.DuplicateIDs)
	return report, nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
