package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermBackingStore(t *testing.T) {
	c := NewTerm(40, 10, 2)
	w, h := c.PixelSize()
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)

	lw, lh := c.Size()
	assert.Equal(t, 40.0, lw)
	assert.Equal(t, 20.0, lh)
}

func TestTermScaleAffectsLogicalSize(t *testing.T) {
	c := NewTerm(40, 10, 1)
	c.Scale(1, 0.5)
	_, lh := c.Size()
	// 10 pixel rows at half vertical scale expose 20 logical units
	assert.Equal(t, 20.0, lh)

	c.ResetTransform()
	_, lh = c.Size()
	assert.Equal(t, 10.0, lh)
}

func TestTermFillRect(t *testing.T) {
	c := NewTerm(10, 5, 2)
	c.SetFill("#FF0000")
	c.FillRect(2, 2, 4, 4)

	col, ok := c.PixelAt(3, 3)
	require.True(t, ok)
	assert.Equal(t, Color("#FF0000"), col)

	_, ok = c.PixelAt(0, 0)
	assert.False(t, ok)
	_, ok = c.PixelAt(7, 3)
	assert.False(t, ok)
}

func TestTermClear(t *testing.T) {
	c := NewTerm(10, 5, 2)
	c.SetFill("#FF0000")
	c.FillRect(0, 0, 10, 10)
	c.FillText("hi", 0, 0)
	c.Clear()

	_, ok := c.PixelAt(1, 1)
	assert.False(t, ok)
	assert.Equal(t, rune(0), c.RuneAt(0, 0))
}

func TestTermStrokeLine(t *testing.T) {
	c := NewTerm(10, 10, 1)
	c.SetStroke("#00FF00")
	c.BeginPath()
	c.MoveTo(0, 5)
	c.LineTo(9, 5)
	c.Stroke()

	for x := 0; x <= 9; x++ {
		_, ok := c.PixelAt(x, 5)
		assert.True(t, ok, "pixel %d,5 should be stroked", x)
	}
	_, ok := c.PixelAt(5, 2)
	assert.False(t, ok)
}

func TestTermDashedStrokeLeavesGaps(t *testing.T) {
	c := NewTerm(30, 4, 1)
	c.SetStroke("#FFFFFF")
	c.SetDash(2, 4)
	c.BeginPath()
	c.MoveTo(0, 1)
	c.LineTo(29, 1)
	c.Stroke()

	lit := 0
	for x := 0; x < 30; x++ {
		if _, ok := c.PixelAt(x, 1); ok {
			lit++
		}
	}
	assert.Greater(t, lit, 0)
	assert.Less(t, lit, 30)
}

func TestTermFillClosedPath(t *testing.T) {
	c := NewTerm(20, 20, 1)
	c.SetFill("#0000FF")
	c.BeginPath()
	c.MoveTo(5, 5)
	c.LineTo(15, 5)
	c.LineTo(15, 15)
	c.LineTo(5, 15)
	c.ClosePath()
	c.Fill()

	_, ok := c.PixelAt(10, 10)
	assert.True(t, ok, "interior should be filled")
	_, ok = c.PixelAt(2, 2)
	assert.False(t, ok, "exterior must stay clear")
}

func TestTermAlphaBlendsTowardBackground(t *testing.T) {
	c := NewTerm(4, 4, 1)
	c.SetFill("#FFFFFF")
	c.SetAlpha(0.5)
	c.FillRect(0, 0, 1, 1)

	col, ok := c.PixelAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, Color("#7F7F7F"), col)
}

func TestTermTextAlignment(t *testing.T) {
	c := NewTerm(20, 4, 2)
	c.SetFill("#FFFFFF")

	c.SetTextAlign(AlignLeft)
	c.FillText("ab", 0, 2)
	assert.Equal(t, 'a', c.RuneAt(0, 1))
	assert.Equal(t, 'b', c.RuneAt(1, 1))

	c.SetTextAlign(AlignRight)
	c.FillText("xy", 20, 6)
	assert.Equal(t, 'x', c.RuneAt(18, 3))
	assert.Equal(t, 'y', c.RuneAt(19, 3))
}

func TestTermMeasureText(t *testing.T) {
	c := NewTerm(20, 4, 2)
	assert.Equal(t, 5.0, c.MeasureText("12345"))
}

func TestTermRenderShape(t *testing.T) {
	c := NewTerm(8, 3, 2)
	out := c.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
}
