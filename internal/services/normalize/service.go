package normalize

import (
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"cbzkit/internal/domain"
	"cbzkit/internal/fsutil"
	"cbzkit/internal/imaging"
)

// Service normalizes the images of a working tree in place.
type Service struct {
	log *slog.Logger
}

// New returns a normalizer that reports through log.
func New(log *slog.Logger) *Service { return &Service{log: log} }

// Normalize walks root recursively in name-sorted order and processes every
// regular file. Files that are not decodable images are left untouched; a
// failure on one file never aborts the walk.
func (s *Service) Normalize(root string, bbox domain.BoundingBox, quality int) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if e.IsDir() {
			if err := s.Normalize(path, bbox, quality); err != nil {
				return err
			}
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		s.normalizeFile(path, bbox, quality)
	}
	return nil
}

func (s *Service) normalizeFile(path string, bbox domain.BoundingBox, quality int) {
	asset, err := imaging.DecodeFile(path)
	if err != nil {
		s.log.Debug("skipping non-image file", "path", path)
		return
	}

	img := asset.Image
	if bbox.Fits(asset.Width(), asset.Height()) {
		s.log.Debug("image fits bounding box", "path", path,
			"width", asset.Width(), "height", asset.Height())
	} else {
		w, h := bbox.FitWithin(asset.Width(), asset.Height())
		s.log.Debug("resizing image", "path", path,
			"width", asset.Width(), "height", asset.Height(), "new_width", w, "new_height", h)
		img = imaging.Scale(img, w, h)
	}

	// Even a fitting image is re-encoded: the controlled quality can shrink
	// it, and the acceptance check below protects it if not.
	candidate := fsutil.AddSuffix(path, "resized")
	if err := s.encodeTo(candidate, img, asset.Format, quality); err != nil {
		s.log.Warn("cannot re-encode image, keeping original",
			"path", path, "format", asset.Format, "error", err)
		return
	}

	info, err := os.Stat(candidate)
	if err != nil {
		s.log.Warn("cannot stat candidate, keeping original", "path", candidate, "error", err)
		os.Remove(candidate)
		return
	}
	if info.Size() >= asset.Size {
		s.log.Debug("re-encode not smaller, keeping original",
			"path", path, "size", asset.Size, "candidate_size", info.Size())
		os.Remove(candidate)
		return
	}
	if err := os.Rename(candidate, path); err != nil {
		s.log.Warn("cannot promote candidate, keeping original", "path", path, "error", err)
		os.Remove(candidate)
		return
	}
	s.log.Info("image reduced", "path", path, "size", asset.Size, "new_size", info.Size())
}

// encodeTo writes the re-encoded candidate beside the original; a failed
// encode leaves no candidate file behind.
func (s *Service) encodeTo(path string, img image.Image, format string, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := imaging.Encode(f, img, format, quality); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// Compile-time assertion that Service implements domain.Normalizer.
var _ domain.Normalizer = (*Service)(nil)
