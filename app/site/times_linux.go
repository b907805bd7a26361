//go:build linux

package site

import (
	"os"
	"syscall"
	"time"
)

// birthTime approximates the creation time of a file. Linux does not expose
// the inode birth time through os.FileInfo, so the inode change time is the
// closest stable stand-in.
func birthTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	}
	return info.ModTime()
}
