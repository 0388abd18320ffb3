// Package times exposes file access times, which os.FileInfo does not
// surface portably, alongside the modification time.
package times

import (
	"os"
	"time"
)

// Stat returns the access and modification times of the file at path.
func Stat(path string) (atime, mtime time.Time, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return Access(info), info.ModTime(), nil
}
