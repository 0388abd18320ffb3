package finder

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the file suffixes treated as build inputs when no
// override is configured.
var DefaultExtensions = []string{".c", ".h"}

// WalkSourceFiles walks the tree rooted at root and calls fn for every
// regular file whose name ends in one of exts. Symbolic links are skipped
// and never followed, whether they point at files or directories.
func WalkSourceFiles(root string, exts []string, fn func(path string, info fs.FileInfo) error) error {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !MatchesExtension(d.Name(), exts) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(path, info)
	})
}

// MatchesExtension reports whether name ends in one of the given suffixes.
// Suffix match rather than filepath.Ext so multi-dot suffixes work too.
func MatchesExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
