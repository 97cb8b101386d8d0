package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cbzkit/internal/app"
)

func TestConfigOptions(t *testing.T) {
	tmp := t.TempDir()
	opts, err := app.Config{Resize: "1440x", Quality: 75, TempRoot: tmp}.Options()
	require.NoError(t, err)
	assert.Equal(t, 1440, opts.BBox.MaxWidth)
	assert.Equal(t, -1, opts.BBox.MaxHeight)
	assert.Equal(t, 75, opts.Quality)
	assert.Equal(t, tmp, opts.TempRoot)
}

func TestConfigRejectsBadResize(t *testing.T) {
	_, err := app.Config{Resize: "wide", Quality: 75}.Options()
	assert.Error(t, err)
}

func TestConfigRejectsBadQuality(t *testing.T) {
	for _, q := range []int{0, -5, 101} {
		_, err := app.Config{Resize: "1440x", Quality: q}.Options()
		assert.Error(t, err, "quality %d", q)
	}
}

func TestConfigRejectsMissingTempRoot(t *testing.T) {
	_, err := app.Config{Resize: "1440x", Quality: 75, TempRoot: "/no/such/dir"}.Options()
	assert.Error(t, err)
}
