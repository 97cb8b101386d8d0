package imaging

import (
	"fmt"
	"image"
	"os"

	// Register the decoders image.Decode may dispatch to.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"cbzkit/internal/domain"
)

// Asset is a decoded raster image together with its on-disk facts.
type Asset struct {
	Image  image.Image
	Format string // decoder name as registered with image: "jpeg", "png", ...
	Size   int64  // byte size of the source file
}

// Width returns the pixel width of the decoded image.
func (a *Asset) Width() int { return a.Image.Bounds().Dx() }

// Height returns the pixel height of the decoded image.
func (a *Asset) Height() int { return a.Image.Bounds().Dy() }

// DecodeFile probes path as a raster image. Anything that cannot be decoded
// (non-image data, unsupported codecs, empty or unreadable files) reports
// domain.ErrUndecodableImage so callers can skip the file.
func DecodeFile(path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUndecodableImage, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUndecodableImage, path, err)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUndecodableImage, path, err)
	}
	return &Asset{Image: img, Format: format, Size: info.Size()}, nil
}
