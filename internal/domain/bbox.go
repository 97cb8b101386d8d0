package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// boundsRe is the compact bounding-box grammar. Either numeric group may be
// omitted to leave that axis unconstrained: "1440x", "x2160", "1440x2160"
// and the fully unconstrained "x" are all valid.
var boundsRe = regexp.MustCompile(`^(\d+)?x(\d+)?$`)

// BoundingBox is the maximum pixel extent an image may have before it is
// resized. An axis value of zero or below means that axis is unconstrained.
type BoundingBox struct {
	MaxWidth  int
	MaxHeight int
}

// ParseBoundingBox parses the WIDTHxHEIGHT grammar. Omitted groups map to
// the unconstrained sentinel.
func ParseBoundingBox(s string) (BoundingBox, error) {
	m := boundsRe.FindStringSubmatch(s)
	if m == nil {
		return BoundingBox{}, fmt.Errorf("invalid bounding box %q (want WIDTHxHEIGHT, either side optional)", s)
	}
	b := BoundingBox{MaxWidth: -1, MaxHeight: -1}
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return BoundingBox{}, fmt.Errorf("invalid max width %q: %w", m[1], err)
		}
		b.MaxWidth = n
	}
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return BoundingBox{}, fmt.Errorf("invalid max height %q: %w", m[2], err)
		}
		b.MaxHeight = n
	}
	return b, nil
}

// Constrained reports whether at least one axis carries a limit.
func (b BoundingBox) Constrained() bool {
	return b.MaxWidth > 0 || b.MaxHeight > 0
}

// Fits reports whether a w by h image already satisfies the box. An
// unconstrained axis is always satisfied.
func (b BoundingBox) Fits(w, h int) bool {
	if b.MaxWidth > 0 && w > b.MaxWidth {
		return false
	}
	if b.MaxHeight > 0 && h > b.MaxHeight {
		return false
	}
	return true
}

// FitWithin returns the largest size not exceeding w by h that satisfies
// both constrained axes while preserving the aspect ratio. The limiting
// axis lands exactly on its limit. An already-fitting size is returned
// unchanged; FitWithin never upscales.
func (b BoundingBox) FitWithin(w, h int) (int, int) {
	scale := 1.0
	if b.MaxWidth > 0 && w > b.MaxWidth {
		scale = float64(b.MaxWidth) / float64(w)
	}
	if b.MaxHeight > 0 && h > b.MaxHeight {
		if s := float64(b.MaxHeight) / float64(h); s < scale {
			scale = s
		}
	}
	if scale >= 1 {
		return w, h
	}
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

// String renders the box back in the flag grammar.
func (b BoundingBox) String() string {
	s := "x"
	if b.MaxWidth > 0 {
		s = fmt.Sprintf("%d", b.MaxWidth) + s
	}
	if b.MaxHeight > 0 {
		s += fmt.Sprintf("%d", b.MaxHeight)
	}
	return s
}
