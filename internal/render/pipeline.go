// Package render draws the overlay widgets from a canonical telemetry
// snapshot. Everything here is stateless: each call consumes the snapshot and
// a drawing surface and nothing else.
package render

import (
	"fmt"
	"math"

	"raceoverlay/internal/canvas"
	"raceoverlay/internal/config"
	"raceoverlay/internal/telemetry"
)

var (
	colorRing     = canvas.Color("#2E8B57")
	colorRingDim  = canvas.Color("#1C4A33")
	colorPlayer   = canvas.Color("#00FF41")
	colorContact  = canvas.Color("#00FFAA")
	colorBarEdge  = canvas.Color("#2E8B57")
	colorBarFill  = canvas.Color("#00CC33")
	colorBarText  = canvas.Color("#CCFFCC")
	colorBehind   = canvas.Color("#FF5C33")
	colorAhead    = canvas.Color("#33CCFF")
	colorNeutral  = canvas.Color("#8A8A8A")
	colorOutline  = canvas.Color("#101010")
	colorBannerBg = canvas.Color("#0A1A0A")
	colorBanner   = canvas.Color("#00FF41")
)

// Toggles selects which widgets are drawn.
type Toggles struct {
	Radar    bool
	Progress bool
	Delta    bool
}

// Frame is everything one draw call needs. A non-empty Message means the
// fallback banner is shown instead of the widgets; State may then be nil.
type Frame struct {
	State   *telemetry.State
	Toggles Toggles
	Message string
}

// Draw clears the surface and renders one frame: radar, then lap bar, then
// delta readout, or the fallback banner when there is nothing live to show.
func Draw(c canvas.Canvas, f Frame) {
	c.Clear()

	if f.Message != "" || f.State == nil {
		msg := f.Message
		if msg == "" {
			msg = "waiting for telemetry"
		}
		DrawFallback(c, msg)
		return
	}

	if f.Toggles.Radar {
		DrawRadar(c, f.State)
	}
	if f.Toggles.Progress {
		DrawLapBar(c, f.State.Player.LapProgress)
	}
	if f.Toggles.Delta {
		DrawDelta(c, f.State.Player.Delta)
	}
}

// RadarCenter reports the radar gauge centre and radius for a viewport.
func RadarCenter(w, h float64) (cx, cy, radius float64) {
	radius = config.RadiusFactor * math.Min(w, h)
	cx = math.Min(radius+40, 0.4*w)
	cy = 0.55 * h
	return cx, cy, radius
}

// DrawRadar renders the circular gauge: outer ring, dashed range rings, a
// forward heading tick, the player glyph, and one disc per contact. The view
// is heading-stabilised, so contacts are rotated by -heading and the player
// always points up.
func DrawRadar(c canvas.Canvas, st *telemetry.State) {
	w, h := c.Size()
	cx, cy, radius := RadarCenter(w, h)

	c.SetAlpha(1)
	c.SetLineWidth(1)

	c.SetStroke(colorRing)
	c.SetDash(0, 0)
	c.BeginPath()
	c.Arc(cx, cy, radius, 0, 2*math.Pi)
	c.Stroke()

	c.SetStroke(colorRingDim)
	c.SetDash(3, 3)
	for i := 1; i <= config.RingCount; i++ {
		c.BeginPath()
		c.Arc(cx, cy, radius*float64(i)/3, 0, 2*math.Pi)
		c.Stroke()
	}
	c.SetDash(0, 0)

	// Forward heading tick at the top of the gauge
	c.SetStroke(colorRing)
	c.BeginPath()
	c.MoveTo(cx, cy-radius-3)
	c.LineTo(cx, cy-radius+3)
	c.Stroke()

	// Player glyph: fixed forward-pointing triangle at the origin
	c.SetFill(colorPlayer)
	c.BeginPath()
	c.MoveTo(cx, cy-5)
	c.LineTo(cx-4, cy+4)
	c.LineTo(cx+4, cy+4)
	c.ClosePath()
	c.Fill()

	// Counter-rotate the world by the player heading so a contact dead
	// ahead always plots straight up.
	scale := radius / config.MaxRange
	sin, cos := math.Sincos(st.Player.Heading)
	c.SetFill(colorContact)
	for _, car := range st.Cars {
		rx := car.RelX*cos - car.RelY*sin
		ry := car.RelX*sin + car.RelY*cos

		sx := clamp(rx*scale, -radius, radius)
		sy := clamp(ry*scale, -radius, radius)

		c.SetAlpha(ContactOpacity(car.Distance))
		c.BeginPath()
		c.Arc(cx+sx, cy-sy, 2.5, 0, 2*math.Pi)
		c.ClosePath()
		c.Fill()
	}
	c.SetAlpha(1)
}

// ContactOpacity maps distance onto a disc opacity: nearer contacts render
// more opaque, floored and capped so everything stays visible.
func ContactOpacity(distance float64) float64 {
	return clamp(1-distance/config.MaxRange, config.MinOpacity, config.MaxOpacity)
}

// DrawLapBar renders the rounded lap-progress bar anchored near the bottom.
func DrawLapBar(c canvas.Canvas, progress float64) {
	w, h := c.Size()
	bw := config.BarWidthFactor * w
	bh := config.BarHeight
	bx := (w - bw) / 2
	by := h - bh - 12

	p := clamp(progress, 0, 1)

	c.SetAlpha(1)
	c.SetDash(0, 0)
	c.SetLineWidth(1)
	c.SetStroke(colorBarEdge)
	roundedRect(c, bx, by, bw, bh, 6)
	c.Stroke()

	c.SetFill(colorBarFill)
	half := config.BarInset / 2
	c.FillRect(bx+half, by+half, (bw-config.BarInset)*p, bh-config.BarInset)

	c.SetFill(colorBarText)
	c.SetTextAlign(canvas.AlignCenter)
	c.FillText(fmt.Sprintf("%.0f%%", p*100), bx+bw/2, by+bh/2)
}

// DrawDelta renders the delta readout near the top-right corner. The colour
// carries the sign: warm when behind, cool when ahead, grey when unknown.
// Text is stroked then filled so it stays legible over any background.
func DrawDelta(c canvas.Canvas, delta float64) {
	w, _ := c.Size()
	text := telemetry.FormatDelta(delta)

	color := colorNeutral
	switch {
	case math.IsNaN(delta) || math.IsInf(delta, 0):
		color = colorNeutral
	case delta > 0:
		color = colorBehind
	default:
		color = colorAhead
	}

	c.SetAlpha(1)
	c.SetTextAlign(canvas.AlignRight)
	c.SetStroke(colorOutline)
	c.StrokeText(text, w-4, 3)
	c.SetFill(color)
	c.FillText(text, w-4, 3)
}

// DrawFallback renders the full-viewport translucent status banner.
func DrawFallback(c canvas.Canvas, message string) {
	w, h := c.Size()

	c.SetFill(colorBannerBg)
	c.SetAlpha(0.6)
	c.FillRect(0, 0, w, h)
	c.SetAlpha(1)

	c.SetFill(colorBanner)
	c.SetTextAlign(canvas.AlignCenter)
	c.FillText(message, w/2, h/2)
}

func roundedRect(c canvas.Canvas, x, y, w, h, r float64) {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	c.BeginPath()
	c.MoveTo(x+r, y)
	c.LineTo(x+w-r, y)
	c.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	c.LineTo(x+w, y+h-r)
	c.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	c.LineTo(x+r, y+h)
	c.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	c.LineTo(x, y+r)
	c.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	c.ClosePath()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
