package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cbzkit/internal/domain"
)

func TestParseBoundingBox(t *testing.T) {
	b, err := domain.ParseBoundingBox("1440x")
	require.NoError(t, err)
	assert.Equal(t, 1440, b.MaxWidth)
	assert.Equal(t, -1, b.MaxHeight)

	b, err = domain.ParseBoundingBox("x2160")
	require.NoError(t, err)
	assert.Equal(t, -1, b.MaxWidth)
	assert.Equal(t, 2160, b.MaxHeight)

	b, err = domain.ParseBoundingBox("1440x2160")
	require.NoError(t, err)
	assert.Equal(t, 1440, b.MaxWidth)
	assert.Equal(t, 2160, b.MaxHeight)

	b, err = domain.ParseBoundingBox("x")
	require.NoError(t, err)
	assert.False(t, b.Constrained())
}

func TestParseBoundingBoxRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "1440", "axb", "1440x-1", " 1440x", "1440x2160x"} {
		_, err := domain.ParseBoundingBox(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestFits(t *testing.T) {
	b := domain.BoundingBox{MaxWidth: 1440, MaxHeight: -1}
	assert.True(t, b.Fits(1440, 99999))
	assert.True(t, b.Fits(100, 100))
	assert.False(t, b.Fits(1441, 100))

	both := domain.BoundingBox{MaxWidth: 1440, MaxHeight: 2160}
	assert.True(t, both.Fits(1440, 2160))
	assert.False(t, both.Fits(1440, 2161))
	assert.False(t, both.Fits(1441, 2160))

	none := domain.BoundingBox{MaxWidth: -1, MaxHeight: -1}
	assert.True(t, none.Fits(1<<20, 1<<20))
}

func TestFitWithinPreservesAspectRatio(t *testing.T) {
	b := domain.BoundingBox{MaxWidth: 1440, MaxHeight: 2160}

	// Width is the limiting axis for a 3000x4000 page.
	w, h := b.FitWithin(3000, 4000)
	assert.Equal(t, 1440, w)
	assert.Equal(t, 1920, h)

	// Height limits a squarer image.
	w, h = b.FitWithin(3000, 6000)
	assert.Equal(t, 1080, w)
	assert.Equal(t, 2160, h)
}

func TestFitWithinSingleAxis(t *testing.T) {
	b := domain.BoundingBox{MaxWidth: 1440, MaxHeight: -1}
	w, h := b.FitWithin(16000, 24000)
	assert.Equal(t, 1440, w)
	assert.Equal(t, 2160, h)
}

func TestFitWithinNeverUpscales(t *testing.T) {
	b := domain.BoundingBox{MaxWidth: 1440, MaxHeight: 2160}
	w, h := b.FitWithin(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestFitWithinNeverExceedsLimits(t *testing.T) {
	b := domain.BoundingBox{MaxWidth: 1440, MaxHeight: 2160}
	for _, size := range [][2]int{{1441, 2161}, {9999, 7}, {7, 9999}, {4961, 7016}} {
		w, h := b.FitWithin(size[0], size[1])
		assert.LessOrEqual(t, w, 1440)
		assert.LessOrEqual(t, h, 2160)
		assert.GreaterOrEqual(t, w, 1)
		assert.GreaterOrEqual(t, h, 1)
	}
}

func TestBoundingBoxString(t *testing.T) {
	for _, s := range []string{"1440x", "x2160", "1440x2160", "x"} {
		b, err := domain.ParseBoundingBox(s)
		require.NoError(t, err)
		assert.Equal(t, s, b.String())
	}
}
