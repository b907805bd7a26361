package scanner

import (
	"time"
)

// Entry is one candidate article discovered in a category. Entries are
// immutable once produced.
type Entry struct {
	Path      string // content file, slash-separated and relative to the site root
	Title     string
	Published time.Time

	// Open reads the article content. Reads are deferred until the ranked
	// entry set is final, so discarded candidates are never loaded.
	Open func() ([]byte, error)
}
