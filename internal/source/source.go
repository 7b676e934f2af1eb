// Package source walks interpreter source trees and collects documentation
// entries from the files matching configured glob patterns.
package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lattice-lang/tools/internal/doccomment"
	"github.com/lattice-lang/tools/internal/logfields"
)

// DefaultPatterns matches the interpreter's C sources at the tree root.
var DefaultPatterns = []string{"*.c"}

// Scanner extracts documentation entries from files under one directory.
type Scanner struct {
	dir      string
	patterns []string
}

// NewScanner creates a scanner for dir. Patterns are doublestar globs
// relative to dir; when none are given DefaultPatterns applies.
func NewScanner(dir string, patterns ...string) *Scanner {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &Scanner{dir: dir, patterns: patterns}
}

// Scan reads every matching file in lexical path order and returns the
// entries of all of them concatenated. A missing scan directory and
// unreadable files are logged and skipped; only an invalid pattern is an
// error, since that is a configuration mistake rather than a property of
// the tree being scanned.
func (s *Scanner) Scan() ([]doccomment.Entry, error) {
	if _, err := os.Stat(s.dir); err != nil {
		slog.Warn("Source directory not found, nothing to scan",
			logfields.Path(s.dir), logfields.Error(err))
		return nil, nil
	}

	files, err := s.listFiles()
	if err != nil {
		return nil, err
	}

	var entries []doccomment.Entry
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			slog.Warn("Skipping unreadable source file",
				logfields.File(file), logfields.Error(err))
			continue
		}

		rel, err := filepath.Rel(s.dir, file)
		if err != nil {
			rel = file
		}

		found := doccomment.Parse(string(data))
		for i := range found {
			found[i].SourceFile = rel
		}
		entries = append(entries, found...)

		slog.Debug("Scanned source file",
			logfields.File(rel), logfields.Count(len(found)))
	}

	return entries, nil
}

// listFiles resolves all patterns against the scan directory, deduplicates
// overlapping matches and returns them sorted so scan order never depends
// on pattern order or directory iteration.
func (s *Scanner) listFiles() ([]string, error) {
	seen := make(map[string]struct{})
	for _, pattern := range s.patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(s.dir, pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPattern, pattern, err)
		}
		for _, m := range matches {
			seen[m] = struct{}{}
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}
