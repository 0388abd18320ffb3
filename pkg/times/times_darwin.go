//go:build darwin

package times

import (
	"os"
	"syscall"
	"time"
)

// Access extracts the access time from a Darwin stat result.
func Access(info os.FileInfo) time.Time {
	if sys, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(sys.Atimespec.Sec, sys.Atimespec.Nsec)
	}
	return info.ModTime()
}
