package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"

	"cbzkit/internal/domain"
)

// Service extracts archive entries into a working directory.
type Service struct {
	log *slog.Logger
}

// New returns an extractor that reports through log.
func New(log *slog.Logger) *Service { return &Service{log: log} }

// Extract enumerates entries in container order and materializes each one
// under destDir at its relative path, creating intermediate directories as
// needed. Unsafe and duplicate entries are skipped and logged; only an
// unparsable container fails the whole archive (domain.ErrCorruptArchive).
func (s *Service) Extract(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCorruptArchive, archivePath, err)
	}
	defer r.Close()
	r.RegisterDecompressor(zip.Deflate, func(in io.Reader) io.ReadCloser {
		return flate.NewReader(in)
	})

	root := filepath.Clean(destDir)
	for _, f := range r.File {
		dest, err := entryPath(root, f.Name)
		if err != nil {
			s.log.Error("refusing entry outside extraction root", "archive", archivePath, "entry", f.Name)
			continue
		}
		if f.Mode()&os.ModeSymlink != 0 {
			s.log.Error("refusing symlink entry", "archive", archivePath, "entry", f.Name)
			continue
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				s.log.Warn("could not create directory entry", "entry", f.Name, "error", err)
			}
			continue
		}
		if _, err := os.Lstat(dest); err == nil {
			s.log.Info("skipping duplicate entry", "archive", archivePath, "entry", f.Name)
			continue
		}
		if err := writeEntry(f, dest); err != nil {
			s.log.Warn("could not extract entry", "entry", f.Name, "error", err)
			continue
		}
		s.log.Debug("extracted entry", "entry", f.Name, "dest", dest)
	}
	return nil
}

// entryPath resolves an entry name under root, rejecting names that would
// escape it: absolute paths, leading parent references, and anything whose
// cleaned join leaves the root.
func entryPath(root, name string) (string, error) {
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) || strings.HasPrefix(name, "..") {
		return "", fmt.Errorf("%w: %s", domain.ErrPathTraversal, name)
	}
	dest := filepath.Join(root, filepath.FromSlash(name))
	if dest != root && !strings.HasPrefix(dest, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", domain.ErrPathTraversal, name)
	}
	return dest, nil
}

func writeEntry(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Compile-time assertion that Service implements domain.Extractor.
var _ domain.Extractor = (*Service)(nil)
