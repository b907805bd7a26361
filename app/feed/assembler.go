// Package feed turns scanned candidate entries into a ranked feed model and
// serializes it as an Atom document.
package feed

import (
	"fmt"
	"net/url"
	"path/filepath"
	"sort"
	"time"

	"github.com/ewurbel/gematom/app/cfg"
	"github.com/ewurbel/gematom/app/scanner"
)

// Assemble merges the candidates of all categories into a bounded, ranked
// model. Entries with identical instants keep their relative order.
func Assemble(entries []scanner.Entry, c *cfg.Cfg) (*Model, error) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Published.After(entries[j].Published)
	})

	n := c.N
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	entries = entries[:n]

	updated := time.Now().UTC()
	if len(entries) > 0 {
		updated = entries[0].Published
	}

	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}

	return &Model{
		Title:    c.Title,
		Subtitle: c.Subtitle,
		BaseURL:  c.BaseURL,
		SelfURL:  base.JoinPath(filepath.Base(c.Output)).String(),
		Author:   c.Author,
		Email:    c.Email,
		Version:  c.Version,
		Updated:  updated,
		Entries:  entries,
	}, nil
}
