// Package site wraps the filesystem operations the pipeline needs, scoped
// to the site root. All paths passed in are slash-separated and relative to
// the root.
package site

import (
	"os"
	"path/filepath"
	"time"
)

type FS struct {
	root string
}

func New(root string) *FS {
	return &FS{root: root}
}

func (f *FS) Root() string {
	return f.root
}

func (f *FS) abs(rel string) string {
	return filepath.Join(f.root, filepath.FromSlash(rel))
}

// List returns the immediate entries of a directory.
func (f *FS) List(rel string) ([]os.DirEntry, error) {
	return os.ReadDir(f.abs(rel))
}

func (f *FS) IsDir(rel string) (bool, error) {
	info, err := os.Stat(f.abs(rel))
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (f *FS) ReadFile(rel string) ([]byte, error) {
	return os.ReadFile(f.abs(rel))
}

func (f *FS) ModTime(rel string) (time.Time, error) {
	info, err := os.Stat(f.abs(rel))
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// BirthTime returns the creation time of a file, as close as the platform
// allows (see times_*.go).
func (f *FS) BirthTime(rel string) (time.Time, error) {
	info, err := os.Stat(f.abs(rel))
	if err != nil {
		return time.Time{}, err
	}
	return birthTime(info), nil
}

// WorldReadable reports whether the file can be read by anyone, which is
// what a Gemini server requires before it will serve the file.
func (f *FS) WorldReadable(rel string) (bool, error) {
	info, err := os.Stat(f.abs(rel))
	if err != nil {
		return false, err
	}
	return info.Mode().Perm()&0o004 != 0, nil
}
