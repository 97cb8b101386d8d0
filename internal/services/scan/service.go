package scan

import (
	"archive/zip"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/klauspost/compress/flate"
	"golang.org/x/crypto/blake2b"

	"cbzkit/internal/domain"
)

// Service inspects archives without mutating them.
type Service struct {
	log *slog.Logger
}

// New returns a scanner that reports through log.
func New(log *slog.Logger) *Service { return &Service{log: log} }

// Scan opens the archive read-only and reports entries larger than
// limitBytes, names occurring more than once, and distinct names whose
// contents hash identically. Returns domain.ErrCorruptArchive for an
// unparsable container.
func (s *Service) Scan(archivePath string, limitBytes int64) (domain.ScanReport, error) {
	report := domain.ScanReport{Path: archivePath}

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return report, fmt.Errorf("%w: %s: %v", domain.ErrCorruptArchive, archivePath, err)
	}
	defer r.Close()
	r.RegisterDecompressor(zip.Deflate, func(in io.Reader) io.ReadCloser {
		return flate.NewReader(in)
	})

	counts := map[string]int{}
	byDigest := map[string][]string{}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		counts[f.Name]++
		if size := int64(f.UncompressedSize64); size > limitBytes {
			report.LargeEntries = append(report.LargeEntries, domain.EntrySize{Name: f.Name, Size: size})
		}
		sum, err := digestEntry(f)
		if err != nil {
			s.log.Debug("cannot digest entry", "archive", archivePath, "entry", f.Name, "error", err)
			continue
		}
		byDigest[sum] = append(byDigest[sum], f.Name)
	}

	sort.Slice(report.LargeEntries, func(i, j int) bool {
		return report.LargeEntries[i].Size > report.LargeEntries[j].Size
	})

	for name, n := range counts {
		if n > 1 {
			report.DuplicateNames = append(report.DuplicateNames, name)
		}
	}
	sort.Strings(report.DuplicateNames)

	for sum, names := range byDigest {
		if len(names) < 2 || !hasDistinct(names) {
			continue
		}
		if report.SameContent == nil {
			report.SameContent = map[string][]string{}
		}
		report.SameContent[sum] = names
	}

	return report, nil
}

// digestEntry hashes the decompressed entry content with BLAKE2b-256.
func digestEntry(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, rc); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// hasDistinct reports whether names holds more than one distinct value.
// Same-name repeats are already covered by the duplicate-name report.
func hasDistinct(names []string) bool {
	for _, n := range names[1:] {
		if n != names[0] {
			return true
		}
	}
	return false
}

// Compile-time assertion that Service implements domain.Scanner.
var _ domain.Scanner = (*Service)(nil)
