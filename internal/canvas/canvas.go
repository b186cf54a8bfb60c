// Package canvas provides a minimal immediate-mode 2D drawing surface.
// The render pipeline only ever talks to the Canvas interface; the terminal
// backend in term.go is the one host-specific implementation.
package canvas

// Color is a hex colour like "#00FF41".
type Color string

// Align controls the horizontal anchoring of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is an immediate-mode 2D drawing context. Coordinates are logical
// units; the backend maps them onto its backing store through the current
// scale transform.
type Canvas interface {
	// Size reports the logical viewport dimensions.
	Size() (w, h float64)
	// Clear erases the whole surface.
	Clear()
	// ResetTransform drops the current scale back to identity.
	ResetTransform()
	// Scale multiplies the current transform.
	Scale(sx, sy float64)

	SetFill(c Color)
	SetStroke(c Color)
	SetAlpha(a float64)
	SetLineWidth(w float64)
	// SetDash sets the stroke dash pattern; SetDash(0, 0) is solid.
	SetDash(on, off float64)
	SetTextAlign(a Align)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc appends a circular arc from start to end angle (radians).
	Arc(cx, cy, r, start, end float64)
	ClosePath()
	Stroke()
	Fill()

	FillRect(x, y, w, h float64)
	FillText(s string, x, y float64)
	// StrokeText draws an outline/halo behind subsequent fill text.
	StrokeText(s string, x, y float64)
	// MeasureText reports the rendered width of s in logical units.
	MeasureText(s string) float64
}
