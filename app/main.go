package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ewurbel/gematom/app/cfg"
	"github.com/ewurbel/gematom/app/feed"
	"github.com/ewurbel/gematom/app/scanner"
	"github.com/ewurbel/gematom/app/site"
)

func main() {
	c, err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if c == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(c)

	if err := run(c); err != nil {
		slog.Error("feed generation failed", "error", err)
		os.Exit(1)
	}
}

// run performs one full scan-then-render pass. The output file is only
// written once the whole document has been generated and checked.
func run(c *cfg.Cfg) error {
	fs := site.New(c.RootDir)
	sc := scanner.New(fs, c)

	var candidates []scanner.Entry
	for _, cat := range c.Categories {
		entries, err := sc.Scan(cat)
		if err != nil {
			return err
		}
		slog.Debug("scanned category",
			"path", cat.Path, "scheme", cat.Scheme, "entries", len(entries))
		candidates = append(candidates, entries...)
	}

	model, err := feed.Assemble(candidates, c)
	if err != nil {
		return err
	}
	for _, entry := range model.Entries {
		slog.Info("adding entry", "path", entry.Path, "title", entry.Title)
	}

	data, err := feed.NewGenerator().Run(model)
	if err != nil {
		return err
	}
	if err := feed.Check(data); err != nil {
		return err
	}

	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return fmt.Errorf("writing feed to %s: %w", c.Output, err)
	}
	slog.Info("feed written",
		"output", c.Output, "title", model.Title, "entries", len(model.Entries))
	return nil
}

func setupLogger(c *cfg.Cfg) {
	level := slog.LevelInfo
	switch {
	case c.Debug:
		level = slog.LevelDebug
	case c.Quiet:
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
