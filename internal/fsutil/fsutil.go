// Package fsutil holds small filesystem helpers shared by the pipeline
// services: derived filenames, input checks and scoped working directories.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

// AddSuffix inserts "-suffix" between a path's stem and its extension:
// AddSuffix("a/b.cbz", "orig") == "a/b-orig.cbz". A path without an
// extension gets the suffix appended.
func AddSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + suffix + ext
}

// IsRegularFile reports whether path names an existing regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// WithWorkDir creates a fresh working directory under root, runs fn with
// it, and removes it recursively on every exit path, including panics.
func WithWorkDir(root, pattern string, fn func(dir string) error) error {
	dir, err := os.MkdirTemp(root, pattern)
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	return fn(dir)
}
