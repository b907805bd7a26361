package scanner

import (
	"path"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleOptions controls how a display title is derived from a file or
// directory name.
type TitleOptions struct {
	StripExtension   bool // filenames carry an extension, directory names do not
	CleanUnderscores bool
	TitleCase        bool
}

// ResolveTitle derives a display title from a file or directory name. A
// recognized date prefix and its separator rune are removed first, then the
// extension when requested, then underscores become spaces when requested.
// A name that strips down to nothing keeps its original form.
func ResolveTitle(name string, opts TitleOptions) string {
	title := name
	if _, n, ok := datePrefix(title); ok {
		title = title[n:]
		if title != "" {
			_, size := utf8.DecodeRuneInString(title)
			title = title[size:]
		}
	}
	if opts.StripExtension {
		title = strings.TrimSuffix(title, path.Ext(title))
	}
	if opts.CleanUnderscores {
		title = strings.ReplaceAll(title, "_", " ")
	}
	if strings.TrimSpace(title) == "" {
		return name
	}
	if opts.TitleCase {
		title = cases.Title(language.Und, cases.NoLower).String(title)
	}
	return title
}
