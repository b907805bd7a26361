package cfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	root := t.TempDir()

	c, err := Load([]string{"-d", root, "-b", "gemini://example.org", "-c", "texts:flat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.N != 10 {
		t.Errorf("N = %d, want default 10", c.N)
	}
	if c.Output != filepath.Join(root, "atom.xml") {
		t.Errorf("output = %q, want it under the site root", c.Output)
	}
	if c.Title != filepath.Base(root) {
		t.Errorf("title = %q, want the site root directory name", c.Title)
	}
	if len(c.Categories) != 1 || c.Categories[0] != (Category{Path: "texts", Scheme: Flat}) {
		t.Errorf("categories = %v", c.Categories)
	}
	if c.UseMtime || c.CleanUnderscores || c.TitleCase || c.Quiet {
		t.Error("boolean options should default to false")
	}
}

func TestLoadExplicitOptions(t *testing.T) {
	root := t.TempDir()

	c, err := Load([]string{
		"-d", root,
		"-b", "gemini://example.org/site/",
		"-c", "texts:flat", "-c", "noise:tree",
		"-n", "3",
		"-o", "/tmp/out.xml",
		"-t", "My site", "-s", "Notes",
		"-a", "Someone", "-e", "someone@example.org",
		"--mtime", "--clean-underscores", "-q",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.N != 3 {
		t.Errorf("N = %d, want 3", c.N)
	}
	if c.Output != "/tmp/out.xml" {
		t.Errorf("absolute output should be kept as-is, got %q", c.Output)
	}
	if len(c.Categories) != 2 || c.Categories[1].Scheme != Tree {
		t.Errorf("categories = %v", c.Categories)
	}
	if c.Title != "My site" || c.Subtitle != "Notes" {
		t.Errorf("title/subtitle = %q/%q", c.Title, c.Subtitle)
	}
	if c.Author != "Someone" || c.Email != "someone@example.org" {
		t.Errorf("author/email = %q/%q", c.Author, c.Email)
	}
	if !c.UseMtime || !c.CleanUnderscores || !c.Quiet {
		t.Error("boolean options not picked up")
	}
}

func TestLoadZeroN(t *testing.T) {
	root := t.TempDir()

	c, err := Load([]string{"-d", root, "-b", "gemini://example.org", "-c", "texts:flat", "-n", "0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.N != 0 {
		t.Errorf("an explicit -n 0 must not fall back to the default, got %d", c.N)
	}
}

func TestLoadRejectsBadCategories(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		val  string
		want string
	}{
		{"texts:zorgl", "not a valid category scheme"},
		{"vers:ici:tree", "bad category specification"},
		{"texts", "bad category specification"},
		{":flat", "bad category specification"},
	}
	for _, tt := range tests {
		_, err := Load([]string{"-d", root, "-b", "gemini://example.org", "-c", tt.val})
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("category %q: got %v, want %q", tt.val, err, tt.want)
		}
	}
}

func TestLoadValidatesBaseURL(t *testing.T) {
	root := t.TempDir()

	valid := []string{
		"gemini://example.org",
		"gemini://example.org/",
		"gemini://example.org/vers/",
	}
	for _, base := range valid {
		if _, err := Load([]string{"-d", root, "-b", base, "-c", "texts:flat"}); err != nil {
			t.Errorf("base %q: unexpected error: %v", base, err)
		}
	}

	invalid := []struct {
		base string
		want string
	}{
		{"http://example.org", "bad URL scheme"},
		{"portnawak", "bad URL scheme"},
		{"gemini://user@example.org/", "user authentication not allowed"},
	}
	for _, tt := range invalid {
		_, err := Load([]string{"-d", root, "-b", tt.base, "-c", "texts:flat"})
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("base %q: got %v, want %q", tt.base, err, tt.want)
		}
	}
}

func TestLoadRejectsMissingRoot(t *testing.T) {
	_, err := Load([]string{"-d", "/nonexistent/site", "-b", "gemini://example.org", "-c", "texts:flat"})
	if err == nil || !strings.Contains(err.Error(), "invalid directory") {
		t.Errorf("got %v, want an invalid directory error", err)
	}
}

func TestLoadRequiresCategories(t *testing.T) {
	root := t.TempDir()

	_, err := Load([]string{"-d", root, "-b", "gemini://example.org"})
	if err == nil || !strings.Contains(err.Error(), "no categories") {
		t.Errorf("got %v, want a missing categories error", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	root := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "site.yml")
	config := `
title: File title
subtitle: File subtitle
base: gemini://example.org
directory: ` + root + `
author:
  name: Someone
  email: someone@example.org
n: 5
mtime: true
clean_underscores: true
categories:
  - path: texts
    scheme: flat
  - path: noise
    scheme: tree
`
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load([]string{"--config", configPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "File title" || c.N != 5 || !c.UseMtime || !c.CleanUnderscores {
		t.Errorf("file values not applied: %+v", c)
	}
	if len(c.Categories) != 2 || c.Categories[0].Path != "texts" || c.Categories[1].Scheme != Tree {
		t.Errorf("categories = %v", c.Categories)
	}

	// Explicit flags win over file values.
	c, err = Load([]string{"--config", configPath, "-t", "CLI title", "-n", "2", "-c", "other:flat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "CLI title" || c.N != 2 {
		t.Errorf("flags should take precedence, got title %q, n %d", c.Title, c.N)
	}
	if len(c.Categories) != 1 || c.Categories[0].Path != "other" {
		t.Errorf("flag categories should replace file categories, got %v", c.Categories)
	}
}
