package copier

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ritzau/reduce-tree/pkg/times"
)

// ParentCopy copies the file at src into dstRoot, recreating src's directory
// structure relative to treeRoot. This mimics the --parents option of GNU
// cp(1): a file at <treeRoot>/a/b/c.c lands at <dstRoot>/a/b/c.c, with
// missing intermediate directories created as 0755. A file directly at
// treeRoot is copied straight into dstRoot.
func ParentCopy(src, dstRoot, treeRoot string) error {
	if err := parentCopy(src, dstRoot, treeRoot); err != nil {
		return fmt.Errorf("Could not copy %s: %w", src, err)
	}
	return nil
}

func parentCopy(src, dstRoot, treeRoot string) error {
	rel, err := filepath.Rel(treeRoot, src)
	if err != nil {
		return err
	}

	dir := dstRoot
	if parent := filepath.Dir(rel); parent != "." {
		dir = filepath.Join(dstRoot, parent)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return copyFile(src, filepath.Join(dir, filepath.Base(src)))
}

// copyFile copies content plus metadata (permission bits, access and
// modification times), like cp -p. Overwrites any existing destination.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}
	atime := times.Access(info)

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// Creation mode is masked by umask; restore the exact bits
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, atime, info.ModTime())
}
