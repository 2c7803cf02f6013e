package core

import (
	"image/color"
	"math"
)

// darkLuma is the luminance below which a fill is treated as background:
// opaque dark fills erase cells, translucent ones are skipped.
const darkLuma = 40

// CellCanvas rasterizes Canvas primitives onto a Screen. The world is scaled
// so that it covers the whole screen; a cell is painted when its center falls
// inside a shape. Shapes smaller than a cell still mark the cell they sit in.
type CellCanvas struct {
	screen         *Screen
	worldW, worldH float64
	sx, sy         float64 // world units per cell
	dx, dy         float64
	alpha          float64
}

// NewCellCanvas returns a canvas of worldW x worldH units drawing into s.
func NewCellCanvas(s *Screen, worldW, worldH float64) *CellCanvas {
	return &CellCanvas{
		screen: s,
		worldW: worldW,
		worldH: worldH,
		sx:     worldW / float64(Max(1, s.Width())),
		sy:     worldH / float64(Max(1, s.Height())),
		alpha:  1,
	}
}

// Size implements Canvas.
func (c *CellCanvas) Size() (float64, float64) {
	return c.worldW, c.worldH
}

// SetOffset implements Canvas.
func (c *CellCanvas) SetOffset(dx, dy float64) {
	c.dx, c.dy = dx, dy
}

// SetAlpha implements Canvas.
func (c *CellCanvas) SetAlpha(a float64) {
	c.alpha = ClampF(a, 0, 1)
}

// FillRect implements Canvas.
func (c *CellCanvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	glyph, col, ok := c.ink(clr)
	if !ok {
		return
	}
	x += c.dx
	y += c.dy
	if w < c.sx/2 && h < c.sy/2 && glyph != ' ' {
		glyph = '·'
		if h > w {
			glyph = '|'
		}
	}
	x0, x1 := c.span(x, x+w, c.sx)
	y0, y1 := c.span(y, y+h, c.sy)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			c.screen.SetCell(cx, cy, glyph, col)
		}
	}
}

// FillPolygon implements Canvas using an even-odd test at cell centers.
func (c *CellCanvas) FillPolygon(pts []Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	glyph, col, ok := c.ink(clr)
	if !ok {
		return
	}
	moved := make([]Point, len(pts))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	var sumX, sumY float64
	for i, p := range pts {
		p.X += c.dx
		p.Y += c.dy
		moved[i] = p
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		sumX += p.X
		sumY += p.Y
	}

	painted := false
	x0, x1 := c.span(minX, maxX, c.sx)
	y0, y1 := c.span(minY, maxY, c.sy)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px := (float64(cx) + 0.5) * c.sx
			py := (float64(cy) + 0.5) * c.sy
			if pointInPolygon(px, py, moved) {
				c.screen.SetCell(cx, cy, glyph, col)
				painted = true
			}
		}
	}
	if !painted {
		n := float64(len(pts))
		c.screen.SetCell(c.cell(sumX/n, c.sx), c.cell(sumY/n, c.sy), glyph, col)
	}
}

// FillCircle implements Canvas.
func (c *CellCanvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	glyph, col, ok := c.ink(clr)
	if !ok {
		return
	}
	cx += c.dx
	cy += c.dy
	if r < c.sx/2 && r < c.sy/2 && glyph != ' ' {
		glyph = '•'
	}
	painted := false
	x0, x1 := c.span(cx-r, cx+r, c.sx)
	y0, y1 := c.span(cy-r, cy+r, c.sy)
	for gy := y0; gy <= y1; gy++ {
		for gx := x0; gx <= x1; gx++ {
			px := (float64(gx)+0.5)*c.sx - cx
			py := (float64(gy)+0.5)*c.sy - cy
			if px*px+py*py <= r*r {
				c.screen.SetCell(gx, gy, glyph, col)
				painted = true
			}
		}
	}
	if !painted {
		c.screen.SetCell(c.cell(cx, c.sx), c.cell(cy, c.sy), glyph, col)
	}
}

// StrokeCircle implements Canvas. The ring is at least one cell thick.
func (c *CellCanvas) StrokeCircle(cx, cy, r, width float64, clr color.RGBA) {
	_, col, ok := c.ink(clr)
	if !ok {
		return
	}
	cx += c.dx
	cy += c.dy
	half := math.Max(width/2, math.Max(c.sx, c.sy)/2)
	x0, x1 := c.span(cx-r-half, cx+r+half, c.sx)
	y0, y1 := c.span(cy-r-half, cy+r+half, c.sy)
	for gy := y0; gy <= y1; gy++ {
		for gx := x0; gx <= x1; gx++ {
			px := (float64(gx)+0.5)*c.sx - cx
			py := (float64(gy)+0.5)*c.sy - cy
			d := math.Hypot(px, py)
			if d >= r-half && d <= r+half {
				c.screen.SetCell(gx, gy, 'o', col)
			}
		}
	}
}

// Text implements Canvas. Font size is ignored; one rune per cell. Dark text
// takes the color of each cell it overwrites, so a label stamped on a filled
// shape stays readable.
func (c *CellCanvas) Text(x, y float64, s string, st TextStyle) {
	if c.alpha <= 0 || st.Color.A == 0 {
		return
	}
	n := len([]rune(s))
	cx := c.cell(x+c.dx, c.sx)
	cy := c.cell(y+c.dy, c.sy)
	switch st.Align {
	case AlignCenter:
		cx -= n / 2
	case AlignRight:
		cx -= n
	}
	if luma(st.Color) >= darkLuma {
		c.screen.DrawText(cx, cy, s, NearestColor(st.Color))
		return
	}
	i := 0
	for _, r := range s {
		c.screen.SetCell(cx+i, cy, r, c.screen.GetCell(cx+i, cy).Color)
		i++
	}
}

// ink resolves a fill color under the current alpha to a glyph and a cell
// color. ok is false when nothing should be drawn.
func (c *CellCanvas) ink(clr color.RGBA) (rune, Color, bool) {
	a := c.alpha * float64(clr.A) / 255
	if a <= 0 {
		return 0, ColorDefault, false
	}
	if luma(clr) < darkLuma {
		if a >= 1 {
			return ' ', ColorDefault, true
		}
		return 0, ColorDefault, false
	}
	switch {
	case a >= 0.8:
		return '█', NearestColor(clr), true
	case a >= 0.55:
		return '▓', NearestColor(clr), true
	case a >= 0.3:
		return '▒', NearestColor(clr), true
	default:
		return '░', NearestColor(clr), true
	}
}

// span returns the inclusive cell range whose centers fall in [lo, hi].
// The range always holds at least the cell containing the midpoint.
func (c *CellCanvas) span(lo, hi, size float64) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Floor(hi/size - 0.5))
	if last < first {
		mid := c.cell((lo+hi)/2, size)
		return mid, mid
	}
	return first, last
}

func (c *CellCanvas) cell(v, size float64) int {
	return int(math.Floor(v / size))
}

func luma(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func pointInPolygon(x, y float64, pts []Point) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
