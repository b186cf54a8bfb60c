package app

import (
	"raceoverlay/internal/canvas"
)

// Viewport owns the drawing surface sizing: the displayed cell grid versus
// the half-block backing store behind it.
type Viewport struct {
	ratio int
	term  *canvas.Term
}

// NewViewport creates an unsized viewport with the given vertical pixel
// ratio.
func NewViewport(ratio int) *Viewport {
	return &Viewport{ratio: ratio}
}

// Resize rebuilds the backing store at displayed-size × pixel ratio, resets
// the transform, and re-applies the ratio scale so drawing happens in
// resolution-independent units. The caller should redraw afterwards.
func (v *Viewport) Resize(cols, rows int) {
	v.term = canvas.NewTerm(cols, rows, v.ratio)
	v.term.ResetTransform()
	v.term.Scale(1, float64(v.ratio)/2)
}

// Canvas returns the current drawing surface, nil before the first resize.
func (v *Viewport) Canvas() *canvas.Term { return v.term }

// Ready reports whether a surface exists to draw on.
func (v *Viewport) Ready() bool { return v.term != nil }
