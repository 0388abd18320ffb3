//go:build linux

package times

import (
	"os"
	"syscall"
	"time"
)

// Access extracts the access time from a Linux stat result.
func Access(info os.FileInfo) time.Time {
	if sys, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(sys.Atim.Sec, sys.Atim.Nsec)
	}
	return info.ModTime()
}
