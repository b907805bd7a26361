//go:build darwin

package site

import (
	"os"
	"syscall"
	"time"
)

// birthTime returns the creation time of a file. Darwin records the real
// inode birth time.
func birthTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
