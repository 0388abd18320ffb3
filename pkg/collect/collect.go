// Package collect scans a source tree after a build and gathers the files
// the build actually opened into a reduced copy of the tree.
package collect

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/ritzau/reduce-tree/pkg/copier"
	"github.com/ritzau/reduce-tree/pkg/finder"
	"github.com/ritzau/reduce-tree/pkg/logging"
	"github.com/ritzau/reduce-tree/pkg/times"
)

// Stats summarizes one collect pass.
type Stats struct {
	Scanned int // matching source files examined
	Copied  int // files classified as used and copied
}

// Run walks src and copies every matching source file whose access time is
// strictly newer than its modification time into dst, preserving the
// directory structure relative to src. Files whose access time is equal or
// older are skipped as unused. The walk aborts on the first failure; files
// copied before the failure stay in place.
func Run(ctx context.Context, src, dst string, exts []string) (Stats, error) {
	var stats Stats

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return stats, err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return stats, err
	}

	err = finder.WalkSourceFiles(absSrc, exts, func(path string, info fs.FileInfo) error {
		stats.Scanned++
		if !times.Access(info).After(info.ModTime()) {
			logging.TraceContext(ctx, "skipping unused file", "path", path)
			return nil
		}
		if err := copier.ParentCopy(path, absDst, absSrc); err != nil {
			return err
		}
		stats.Copied++
		logging.DebugContext(ctx, "collected file", "path", path)
		return nil
	})
	if err != nil {
		return stats, err
	}

	logging.InfoContext(ctx, "collected used files",
		"root", absSrc, "dest", absDst, "scanned", stats.Scanned, "copied", stats.Copied)
	return stats, nil
}
