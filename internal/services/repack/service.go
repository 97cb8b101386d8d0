package repack

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"

	"cbzkit/internal/domain"
	"cbzkit/internal/fsutil"
)

// Service repackages working trees into archives.
type Service struct {
	log *slog.Logger
}

// New returns a repackager that reports through log.
func New(log *slog.Logger) *Service { return &Service{log: log} }

// Repack moves the existing file at archivePath to its "-orig" backup and
// writes the contents of root as a new deflate-compressed archive at
// archivePath. Returns domain.ErrBackupExists, before touching anything, if
// the backup path is occupied. A partially written output after a failure
// is left on disk for inspection; the backup still holds the original.
func (s *Service) Repack(root, archivePath string) error {
	backup := fsutil.AddSuffix(archivePath, "orig")
	if _, err := os.Lstat(backup); err == nil {
		return fmt.Errorf("%w: %s", domain.ErrBackupExists, backup)
	}
	if err := os.Rename(archivePath, backup); err != nil {
		return err
	}
	s.log.Debug("kept original archive", "backup", backup)

	out, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	// WalkDir visits each level in lexical order; directories become
	// entries only implicitly through file paths.
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		s.log.Debug("compressing entry", "entry", name)
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if walkErr != nil {
		zw.Close()
		out.Close()
		return walkErr
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Compile-time assertion that Service implements domain.Repackager.
var _ domain.Repackager = (*Service)(nil)
