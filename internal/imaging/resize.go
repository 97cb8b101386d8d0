package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resamples img to w by h using Catmull-Rom interpolation, which is
// the slowest but cleanest of the x/image kernels for downsampling pages.
func Scale(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
