//go:build !linux && !darwin && !windows

package times

import (
	"os"
	"time"
)

// Access falls back to the modification time on platforms without a known
// stat layout. Collection classifies every file as unused there.
func Access(info os.FileInfo) time.Time {
	return info.ModTime()
}
