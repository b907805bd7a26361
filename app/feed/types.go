package feed

import (
	"time"

	"github.com/ewurbel/gematom/app/scanner"
)

// Model is the assembled feed, ready for serialization.
type Model struct {
	Title    string
	Subtitle string
	BaseURL  string
	SelfURL  string // where the generated document will be served from
	Author   string
	Email    string
	Version  string
	Updated  time.Time

	// Entries are sorted by publication date, most recent first, and
	// already truncated to the configured count.
	Entries []scanner.Entry
}
