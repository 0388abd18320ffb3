//go:build windows

package times

import (
	"os"
	"syscall"
	"time"
)

// Access extracts the last-access time from a Windows stat result.
// NTFS disables access-time updates by default, so the collect heuristic
// only works on volumes where they have been re-enabled.
func Access(info os.FileInfo) time.Time {
	if sys, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, sys.LastAccessTime.Nanoseconds())
	}
	return info.ModTime()
}
