package feed

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// Check parses a generated document the way an aggregator would. A document
// that fails here is never written out.
func Check(data []byte) error {
	if _, err := gofeed.NewParser().Parse(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("generated feed failed validation: %w", err)
	}
	return nil
}
