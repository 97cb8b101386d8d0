package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cbzkit/internal/domain"
	"cbzkit/internal/imaging"
)

// gradient builds a deterministic non-trivial test image.
func gradient(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.png")
	writePNG(t, path, gradient(120, 80))

	a, err := imaging.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", a.Format)
	assert.Equal(t, 120, a.Width())
	assert.Equal(t, 80, a.Height())
	assert.Positive(t, a.Size)
}

func TestDecodeFileNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some notes\n"), 0o644))

	_, err := imaging.DecodeFile(path)
	assert.ErrorIs(t, err, domain.ErrUndecodableImage)
}

func TestDecodeFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jpg")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := imaging.DecodeFile(path)
	assert.ErrorIs(t, err, domain.ErrUndecodableImage)
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := imaging.DecodeFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, domain.ErrUndecodableImage)
}

func TestScale(t *testing.T) {
	out := imaging.Scale(gradient(300, 400), 150, 200)
	assert.Equal(t, 150, out.Bounds().Dx())
	assert.Equal(t, 200, out.Bounds().Dy())
}

func TestEncodeRoundTrip(t *testing.T) {
	src := gradient(64, 48)
	for _, format := range []string{"jpeg", "png", "gif", "bmp", "tiff"} {
		var buf bytes.Buffer
		require.NoError(t, imaging.Encode(&buf, src, format, 75), format)

		img, got, err := image.Decode(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err, format)
		assert.Equal(t, format, got)
		assert.Equal(t, 64, img.Bounds().Dx(), format)
		assert.Equal(t, 48, img.Bounds().Dy(), format)
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := imaging.Encode(&buf, gradient(8, 8), "webp", 75)
	assert.Error(t, err)
}
