//go:build !linux && !darwin

package site

import (
	"os"
	"time"
)

// birthTime falls back to the modification time on platforms where the
// creation time is not portably available.
func birthTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
