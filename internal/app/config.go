package app

import (
	"fmt"
	"os"

	"cbzkit/internal/domain"
)

// Config holds the raw sanitize flag values before validation.
type Config struct {
	Resize   string // bounding-box grammar, e.g. "1440x"
	Quality  int    // JPEG re-encode quality, 1-100
	TempRoot string // root for scoped working directories, e.g. /tmp
}

// Options validates the configuration once at startup. An invalid
// bounding-box grammar or quality fails fast with a clear diagnostic.
func (c Config) Options() (domain.Options, error) {
	bbox, err := domain.ParseBoundingBox(c.Resize)
	if err != nil {
		return domain.Options{}, err
	}
	if c.Quality < 1 || c.Quality > 100 {
		return domain.Options{}, fmt.Errorf("quality must be between 1 and 100, got %d", c.Quality)
	}
	if c.TempRoot != "" {
		info, err := os.Stat(c.TempRoot)
		if err != nil || !info.IsDir() {
			return domain.Options{}, fmt.Errorf("temp root is not a directory: %s", c.TempRoot)
		}
	}
	return domain.Options{BBox: bbox, Quality: c.Quality, TempRoot: c.TempRoot}, nil
}
