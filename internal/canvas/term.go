package canvas

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Term rasterises canvas drawing into a terminal cell grid. Each cell holds
// `ratio` vertical sub-pixels rendered with half-block characters, so one
// column width is roughly one square pixel. Text bypasses the pixel raster
// and lands on a per-cell rune layer drawn over it.
type Term struct {
	cols, rows int
	ratio      int

	px     []pixel // backing store, cols × rows·ratio
	runes  []rune  // text layer, cols × rows
	runeFg []Color
	runeBg []Color

	sx, sy float64

	fill      Color
	stroke    Color
	alpha     float64
	lineWidth float64
	dashOn    float64
	dashOff   float64
	align     Align

	path []subpath
}

type pixel struct {
	r, g, b uint8
	set     bool
}

type subpath struct {
	pts    []point
	closed bool
}

type point struct{ x, y float64 }

// NewTerm builds a surface for a cols × rows cell grid with the given
// vertical pixel ratio (1 or 2).
func NewTerm(cols, rows, ratio int) *Term {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if ratio < 1 {
		ratio = 1
	}
	t := &Term{
		cols:   cols,
		rows:   rows,
		ratio:  ratio,
		px:     make([]pixel, cols*rows*ratio),
		runes:  make([]rune, cols*rows),
		runeFg: make([]Color, cols*rows),
		runeBg: make([]Color, cols*rows),
	}
	t.resetState()
	return t
}

func (t *Term) resetState() {
	t.sx, t.sy = 1, 1
	t.fill = "#FFFFFF"
	t.stroke = "#FFFFFF"
	t.alpha = 1
	t.lineWidth = 1
	t.dashOn, t.dashOff = 0, 0
	t.align = AlignLeft
	t.path = nil
}

// PixelSize reports the backing-store dimensions.
func (t *Term) PixelSize() (int, int) { return t.cols, t.rows * t.ratio }

func (t *Term) Size() (float64, float64) {
	return float64(t.cols) / t.sx, float64(t.rows*t.ratio) / t.sy
}

func (t *Term) Clear() {
	for i := range t.px {
		t.px[i] = pixel{}
	}
	for i := range t.runes {
		t.runes[i] = 0
		t.runeFg[i] = ""
		t.runeBg[i] = ""
	}
}

func (t *Term) ResetTransform()        { t.sx, t.sy = 1, 1 }
func (t *Term) Scale(sx, sy float64)   { t.sx *= sx; t.sy *= sy }
func (t *Term) SetFill(c Color)        { t.fill = c }
func (t *Term) SetStroke(c Color)      { t.stroke = c }
func (t *Term) SetLineWidth(w float64) { t.lineWidth = w }
func (t *Term) SetTextAlign(a Align)   { t.align = a }

func (t *Term) SetAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	t.alpha = a
}

func (t *Term) SetDash(on, off float64) { t.dashOn, t.dashOff = on, off }

func (t *Term) BeginPath() { t.path = nil }

func (t *Term) MoveTo(x, y float64) {
	t.path = append(t.path, subpath{pts: []point{{x, y}}})
}

func (t *Term) LineTo(x, y float64) {
	if len(t.path) == 0 {
		t.MoveTo(x, y)
		return
	}
	sp := &t.path[len(t.path)-1]
	sp.pts = append(sp.pts, point{x, y})
}

func (t *Term) Arc(cx, cy, r, start, end float64) {
	if r < 0 {
		r = 0
	}
	span := end - start
	steps := int(math.Ceil(math.Abs(span) * math.Max(r, 4)))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i <= steps; i++ {
		a := start + span*float64(i)/float64(steps)
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if i == 0 && len(t.path) == 0 {
			t.MoveTo(x, y)
		} else {
			t.LineTo(x, y)
		}
	}
}

func (t *Term) ClosePath() {
	if len(t.path) == 0 {
		return
	}
	t.path[len(t.path)-1].closed = true
}

// Stroke walks every path segment in half-pixel steps, honouring the dash
// pattern across subpath boundaries.
func (t *Term) Stroke() {
	dashPeriod := t.dashOn + t.dashOff
	travelled := 0.0

	for _, sp := range t.path {
		pts := sp.pts
		if sp.closed && len(pts) > 1 {
			pts = append(append([]point(nil), pts...), pts[0])
		}
		for i := 1; i < len(pts); i++ {
			a := t.toPixel(pts[i-1])
			b := t.toPixel(pts[i])
			segLen := math.Hypot(b.x-a.x, b.y-a.y)
			steps := int(segLen*2) + 1
			for s := 0; s <= steps; s++ {
				f := float64(s) / float64(steps)
				if dashPeriod > 0 {
					pos := math.Mod(travelled+f*segLen, dashPeriod)
					if pos >= t.dashOn {
						continue
					}
				}
				t.plot(a.x+(b.x-a.x)*f, a.y+(b.y-a.y)*f, t.stroke)
			}
			travelled += segLen
		}
	}
}

// Fill rasterises the current path with an even-odd scanline sweep.
// Open subpaths are treated as closed, like a 2D context fill.
func (t *Term) Fill() {
	var edges [][2]point
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, sp := range t.path {
		if len(sp.pts) < 2 {
			continue
		}
		pts := make([]point, len(sp.pts))
		for i, p := range sp.pts {
			pts[i] = t.toPixel(p)
			minY = math.Min(minY, pts[i].y)
			maxY = math.Max(maxY, pts[i].y)
		}
		for i := 1; i < len(pts); i++ {
			edges = append(edges, [2]point{pts[i-1], pts[i]})
		}
		edges = append(edges, [2]point{pts[len(pts)-1], pts[0]})
	}
	if len(edges) == 0 {
		return
	}

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	for y := y0; y <= y1; y++ {
		sy := float64(y) + 0.5
		var xs []float64
		for _, e := range edges {
			a, b := e[0], e[1]
			if (a.y <= sy) == (b.y <= sy) {
				continue
			}
			xs = append(xs, a.x+(b.x-a.x)*(sy-a.y)/(b.y-a.y))
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Round(xs[i])); x <= int(math.Round(xs[i+1])); x++ {
				t.plot(float64(x), float64(y), t.fill)
			}
		}
	}
}

func (t *Term) FillRect(x, y, w, h float64) {
	a := t.toPixel(point{x, y})
	b := t.toPixel(point{x + w, y + h})
	for py := int(math.Round(a.y)); py < int(math.Round(b.y)); py++ {
		for px := int(math.Round(a.x)); px < int(math.Round(b.x)); px++ {
			t.plot(float64(px), float64(py), t.fill)
		}
	}
}

func (t *Term) FillText(s string, x, y float64) {
	t.placeText(s, x, y, t.fill, false)
}

func (t *Term) StrokeText(s string, x, y float64) {
	t.placeText(s, x, y, t.stroke, true)
}

func (t *Term) MeasureText(s string) float64 {
	return float64(len([]rune(s))) / t.sx
}

func (t *Term) placeText(s string, x, y float64, c Color, halo bool) {
	p := t.toPixel(point{x, y})
	col := int(math.Round(p.x))
	row := int(p.y) / t.ratio
	runes := []rune(s)
	switch t.align {
	case AlignCenter:
		col -= len(runes) / 2
	case AlignRight:
		col -= len(runes)
	}
	if row < 0 || row >= t.rows {
		return
	}
	for i, r := range runes {
		cc := col + i
		if cc < 0 || cc >= t.cols {
			continue
		}
		idx := row*t.cols + cc
		if halo {
			t.runeBg[idx] = scaleColor(c, t.alpha)
			continue
		}
		t.runes[idx] = r
		t.runeFg[idx] = scaleColor(c, t.alpha)
	}
}

func (t *Term) toPixel(p point) point {
	return point{p.x * t.sx, p.y * t.sy}
}

func (t *Term) plot(x, y float64, c Color) {
	half := t.lineWidth / 2
	x0 := int(math.Round(x - half + 0.5))
	x1 := int(math.Round(x + half - 0.5))
	y0 := int(math.Round(y - half + 0.5))
	y1 := int(math.Round(y + half - 0.5))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			t.setPixel(px, py, c)
		}
	}
}

func (t *Term) setPixel(x, y int, c Color) {
	if x < 0 || x >= t.cols || y < 0 || y >= t.rows*t.ratio {
		return
	}
	idx := y*t.cols + x
	r, g, b := parseColor(c)
	old := t.px[idx]
	a := t.alpha
	if !old.set {
		old = pixel{}
	}
	t.px[idx] = pixel{
		r:   uint8(float64(old.r)*(1-a) + float64(r)*a),
		g:   uint8(float64(old.g)*(1-a) + float64(g)*a),
		b:   uint8(float64(old.b)*(1-a) + float64(b)*a),
		set: true,
	}
}

// PixelAt reports the colour of a backing-store pixel.
func (t *Term) PixelAt(x, y int) (Color, bool) {
	if x < 0 || x >= t.cols || y < 0 || y >= t.rows*t.ratio {
		return "", false
	}
	p := t.px[y*t.cols+x]
	if !p.set {
		return "", false
	}
	return Color(hex(p)), true
}

// RuneAt reports the text-layer rune at a cell, zero when empty.
func (t *Term) RuneAt(col, row int) rune {
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return 0
	}
	return t.runes[row*t.cols+col]
}

// Render flattens the pixel raster and text layer into a styled frame.
func (t *Term) Render() string {
	var sb strings.Builder
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			idx := row*t.cols + col
			if t.runes[idx] != 0 {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(t.runeFg[idx]))
				if t.runeBg[idx] != "" {
					style = style.Background(lipgloss.Color(t.runeBg[idx]))
				}
				sb.WriteString(style.Render(string(t.runes[idx])))
				continue
			}
			sb.WriteString(t.renderCell(row, col))
		}
		if row < t.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (t *Term) renderCell(row, col int) string {
	if t.ratio == 1 {
		p := t.px[row*t.cols+col]
		if !p.set {
			return " "
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex(p))).Render("█")
	}

	upper := t.px[(row*t.ratio)*t.cols+col]
	lower := t.px[(row*t.ratio+t.ratio-1)*t.cols+col]
	switch {
	case upper.set && lower.set:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex(upper))).
			Background(lipgloss.Color(hex(lower))).
			Render("▀")
	case upper.set:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex(upper))).Render("▀")
	case lower.set:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex(lower))).Render("▄")
	default:
		return " "
	}
}

func parseColor(c Color) (uint8, uint8, uint8) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return 0xFF, 0xFF, 0xFF
	}
	return hexByte(s[1], s[2]), hexByte(s[3], s[4]), hexByte(s[5], s[6])
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

const hexDigits = "0123456789ABCDEF"

func hex(p pixel) string {
	return string([]byte{'#',
		hexDigits[p.r>>4], hexDigits[p.r&0xF],
		hexDigits[p.g>>4], hexDigits[p.g&0xF],
		hexDigits[p.b>>4], hexDigits[p.b&0xF],
	})
}

// scaleColor darkens a colour toward black by alpha, the terminal stand-in
// for translucent text.
func scaleColor(c Color, a float64) Color {
	if a >= 1 {
		return c
	}
	r, g, b := parseColor(c)
	return Color(hex(pixel{
		r: uint8(float64(r) * a),
		g: uint8(float64(g) * a),
		b: uint8(float64(b) * a),
	}))
}
