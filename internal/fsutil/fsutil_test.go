package fsutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cbzkit/internal/fsutil"
)

func TestAddSuffix(t *testing.T) {
	assert.Equal(t, "comic-orig.cbz", fsutil.AddSuffix("comic.cbz", "orig"))
	assert.Equal(t, "/a/b/page-resized.jpg", fsutil.AddSuffix("/a/b/page.jpg", "resized"))
	assert.Equal(t, "noext-orig", fsutil.AddSuffix("noext", "orig"))
	assert.Equal(t, "a.b-orig.c", fsutil.AddSuffix("a.b.c", "orig"))
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, fsutil.IsRegularFile(file))
	assert.False(t, fsutil.IsRegularFile(dir))
	assert.False(t, fsutil.IsRegularFile(filepath.Join(dir, "missing")))
}

func TestWithWorkDirCleansUp(t *testing.T) {
	root := t.TempDir()

	var seen string
	err := fsutil.WithWorkDir(root, "job-*", func(dir string) error {
		seen = dir
		return os.WriteFile(filepath.Join(dir, "scratch"), []byte("x"), 0o644)
	})
	require.NoError(t, err)
	assert.NoDirExists(t, seen)
}

func TestWithWorkDirCleansUpOnError(t *testing.T) {
	root := t.TempDir()
	boom := errors.New("boom")

	var seen string
	err := fsutil.WithWorkDir(root, "job-*", func(dir string) error {
		seen = dir
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoDirExists(t, seen)
}
