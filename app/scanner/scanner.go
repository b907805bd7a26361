// Package scanner discovers candidate feed entries in category directories
// and infers their publication dates and titles.
package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/ewurbel/gematom/app/cfg"
	"github.com/ewurbel/gematom/app/site"
)

// indexNames are the category landing pages. In a flat category they are
// excluded; in a tree category they are the only files that qualify, in
// this order of preference.
var indexNames = []string{"index.gmi", "index.gemini"}

type Scanner struct {
	fs *site.FS
	c  *cfg.Cfg
}

func New(fs *site.FS, c *cfg.Cfg) *Scanner {
	return &Scanner{fs: fs, c: c}
}

// Scan walks one category directory and returns its candidate entries. An
// unreadable category directory is fatal; unreadable articles are logged
// and skipped.
func (s *Scanner) Scan(cat cfg.Category) ([]Entry, error) {
	switch cat.Scheme {
	case cfg.Flat:
		return s.scanFlat(cat)
	case cfg.Tree:
		return s.scanTree(cat)
	}
	return nil, fmt.Errorf("unknown scheme %q for category %s", cat.Scheme, cat.Path)
}

// scanFlat collects the Gemini files directly inside the category
// directory, excluding the category's own landing page.
func (s *Scanner) scanFlat(cat cfg.Category) ([]Entry, error) {
	dirents, err := s.fs.List(cat.Path)
	if err != nil {
		return nil, fmt.Errorf("reading category directory %s: %w", cat.Path, err)
	}

	var entries []Entry
	for _, de := range dirents {
		name := de.Name()
		if de.IsDir() || isIndex(name) || !isGeminiFile(name) {
			continue
		}
		rel := path.Join(cat.Path, name)
		if !s.servable(rel) {
			continue
		}
		entry, err := s.newEntry(rel, name, true)
		if err != nil {
			slog.Warn("skipping article", "path", rel, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// scanTree collects the index.gmi or index.gemini file of each article
// directory inside the category directory. Directories with no index file
// yield nothing; anything else inside them is ignored.
func (s *Scanner) scanTree(cat cfg.Category) ([]Entry, error) {
	dirents, err := s.fs.List(cat.Path)
	if err != nil {
		return nil, fmt.Errorf("reading category directory %s: %w", cat.Path, err)
	}

	var entries []Entry
	for _, de := range dirents {
		if !de.IsDir() {
			continue
		}
		sub := path.Join(cat.Path, de.Name())
		children, err := s.fs.List(sub)
		if err != nil {
			slog.Warn("skipping unreadable article directory", "path", sub, "error", err)
			continue
		}
		index := findIndex(children)
		if index == "" {
			slog.Debug("article directory has no index file", "path", sub)
			continue
		}
		rel := path.Join(sub, index)
		if !s.servable(rel) {
			continue
		}
		// Date and title come from the article directory's name, not
		// from the index file.
		entry, err := s.newEntry(rel, de.Name(), false)
		if err != nil {
			slog.Warn("skipping article", "path", rel, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Scanner) newEntry(rel, name string, stripExt bool) (Entry, error) {
	published, err := ResolveDate(name, rel, s.fs, s.c.UseMtime)
	if err != nil {
		return Entry{}, err
	}
	title := ResolveTitle(name, TitleOptions{
		StripExtension:   stripExt,
		CleanUnderscores: s.c.CleanUnderscores,
		TitleCase:        s.c.TitleCase,
	})
	fs := s.fs
	return Entry{
		Path:      rel,
		Title:     title,
		Published: published,
		Open:      func() ([]byte, error) { return fs.ReadFile(rel) },
	}, nil
}

// servable reports whether a content file would actually be served by a
// Gemini server, which requires world read permission.
func (s *Scanner) servable(rel string) bool {
	readable, err := s.fs.WorldReadable(rel)
	if err != nil {
		slog.Warn("skipping article", "path", rel, "error", err)
		return false
	}
	if !readable {
		slog.Debug("skipping article without world read permission", "path", rel)
	}
	return readable
}

func isIndex(name string) bool {
	for _, idx := range indexNames {
		if name == idx {
			return true
		}
	}
	return false
}

func isGeminiFile(name string) bool {
	return strings.HasSuffix(name, ".gmi") || strings.HasSuffix(name, ".gemini")
}

// findIndex returns the preferred index filename present among children,
// or "" when there is none.
func findIndex(children []os.DirEntry) string {
	for _, idx := range indexNames {
		for _, de := range children {
			if !de.IsDir() && de.Name() == idx {
				return idx
			}
		}
	}
	return ""
}
