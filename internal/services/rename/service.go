package rename

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"cbzkit/internal/domain"
)

// suffixRe captures "<base>_<digits><ext>".
var suffixRe = regexp.MustCompile(`^(.*)_\d+(\.[^.]+)$`)

// Service renames archive files.
type Service struct {
	log *slog.Logger
}

// New returns a renamer that reports through log.
func New(log *slog.Logger) *Service { return &Service{log: log} }

// Rename strips the numeric suffix from path. Names that are not CBZ files
// or carry no suffix are logged and left alone; an occupied destination is
// refused without mutation.
func (s *Service) Rename(path string) error {
	if !strings.HasSuffix(path, ".cbz") {
		s.log.Warn("not a CBZ file", "path", path)
		return nil
	}
	m := suffixRe.FindStringSubmatch(path)
	if m == nil {
		s.log.Warn("no numeric suffix to strip", "path", path)
		return nil
	}
	dest := m[1] + m[2]
	if _, err := os.Lstat(dest); err == nil {
		return fmt.Errorf("file with destination name exists: %s", dest)
	}
	s.log.Debug("renaming", "from", path, "to", dest)
	return os.Rename(path, dest)
}

// Compile-time assertion that Service implements domain.Renamer.
var _ domain.Renamer = (*Service)(nil)
