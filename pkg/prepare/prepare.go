// Package prepare stamps the timestamps of a source tree before a build.
//
// It relies on the relatime mount semantics found on most Linux systems: the
// access time of a file is only updated when the previous access time is
// older than the current modification time. Pushing every source file's
// access time behind a fresh modification time guarantees that the first
// read by the build moves the access time forward again, which is what the
// collect pass looks for.
package prepare

import (
	"context"
	"io/fs"
	"os"
	"time"

	"github.com/ritzau/reduce-tree/pkg/finder"
	"github.com/ritzau/reduce-tree/pkg/logging"
)

// Window is how far behind the fresh modification time the access time is
// pushed. Any value comfortably larger than the filesystem's atime
// granularity works; 48 hours matches the historical behavior.
const Window = 48 * time.Hour

// Run stamps every matching source file under src: modification time becomes
// now, access time now minus window. Symlinks are left alone. The walk
// aborts on the first failure; rerunning is idempotent and repairs a
// partially stamped tree. Returns the number of files stamped.
func Run(ctx context.Context, src string, exts []string, window time.Duration) (int, error) {
	if window <= 0 {
		window = Window
	}

	mtime := time.Now()
	atime := mtime.Add(-window)

	stamped := 0
	err := finder.WalkSourceFiles(src, exts, func(path string, info fs.FileInfo) error {
		if err := os.Chtimes(path, atime, mtime); err != nil {
			return err
		}
		logging.TraceContext(ctx, "stamped file", "path", path)
		stamped++
		return nil
	})
	if err != nil {
		return stamped, err
	}

	logging.InfoContext(ctx, "prepared source tree", "root", src, "files", stamped)
	return stamped, nil
}
