package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportResizeRebuildsBackingStore(t *testing.T) {
	v := NewViewport(2)
	assert.False(t, v.Ready())

	v.Resize(80, 20)
	require.True(t, v.Ready())

	pw, ph := v.Canvas().PixelSize()
	assert.Equal(t, 80, pw)
	assert.Equal(t, 40, ph, "backing store is displayed rows × pixel ratio")

	// Logical units stay resolution independent: height is always rows×2
	_, lh := v.Canvas().Size()
	assert.Equal(t, 40.0, lh)

	v.Resize(100, 30)
	pw, ph = v.Canvas().PixelSize()
	assert.Equal(t, 100, pw)
	assert.Equal(t, 60, ph)
}

func TestViewportRatioOneKeepsLogicalUnits(t *testing.T) {
	v := NewViewport(1)
	v.Resize(80, 20)

	pw, ph := v.Canvas().PixelSize()
	assert.Equal(t, 80, pw)
	assert.Equal(t, 20, ph)

	// Half the backing resolution, same logical height
	_, lh := v.Canvas().Size()
	assert.Equal(t, 40.0, lh)
}
