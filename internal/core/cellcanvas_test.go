package core

import (
	"image/color"
	"testing"
)

func newTestCanvas() (*Screen, *CellCanvas) {
	s := NewScreen(80, 24)
	return s, NewCellCanvas(s, 800, 600)
}

func TestCellCanvasFillRect(t *testing.T) {
	s, c := newTestCanvas()
	c.FillRect(100, 100, 40, 50, Hex("#ff4444"))

	for y := 4; y <= 5; y++ {
		for x := 10; x <= 13; x++ {
			if cell := s.GetCell(x, y); cell.Rune != '█' || cell.Color != ColorBrightRed {
				t.Errorf("cell (%d, %d) = %+v, expected red block", x, y, cell)
			}
		}
	}
	if s.Get(9, 4) != ' ' || s.Get(14, 4) != ' ' || s.Get(10, 6) != ' ' {
		t.Error("FillRect painted outside its bounds")
	}
}

func TestCellCanvasDarkFillErases(t *testing.T) {
	s, c := newTestCanvas()
	s.DrawText(0, 0, "junk", ColorRed)
	c.FillRect(0, 0, 800, 600, Hex("#05050f"))

	if s.Row(0)[:4] != "    " {
		t.Errorf("dark opaque fill should erase, row 0 = %q", s.Row(0))
	}
}

func TestCellCanvasTinyShapes(t *testing.T) {
	s, c := newTestCanvas()
	c.FillRect(400, 300, 3, 3, Hex("#ffffff"))

	if got := s.Get(40, 12); got != '·' {
		t.Errorf("tiny rect glyph = %q, expected '·'", got)
	}

	c.FillPolygon([]Point{{200, 200}, {202, 200}, {201, 203}}, Hex("#44ff44"))
	if got := s.GetCell(20, 8); got.Rune == ' ' || got.Color != ColorBrightGreen {
		t.Errorf("tiny polygon should mark its centroid cell, got %+v", got)
	}
}

func TestCellCanvasAlphaShading(t *testing.T) {
	tests := []struct {
		alpha    float64
		expected rune
	}{
		{1, '█'},
		{0.6, '▓'},
		{0.4, '▒'},
		{0.1, '░'},
	}

	for _, tc := range tests {
		s, c := newTestCanvas()
		c.SetAlpha(tc.alpha)
		c.FillRect(100, 100, 40, 50, color.RGBA{0xff, 0xff, 0xff, 0xff})
		if got := s.Get(11, 4); got != tc.expected {
			t.Errorf("alpha %.1f: glyph = %q, expected %q", tc.alpha, got, tc.expected)
		}
	}
}

func TestCellCanvasZeroAlphaDrawsNothing(t *testing.T) {
	s, c := newTestCanvas()
	c.SetAlpha(0)
	c.FillCircle(400, 300, 50, Hex("#ffffff"))
	c.Text(400, 300, "hidden", TextStyle{Color: Hex("#ffffff")})

	if s.Row(12) != s.Row(0) {
		t.Error("zero alpha should draw nothing")
	}
}

func TestCellCanvasOffset(t *testing.T) {
	s, c := newTestCanvas()
	c.SetOffset(100, 0)
	c.FillRect(0, 100, 40, 50, Hex("#ff4444"))

	if s.Get(10, 4) != '█' {
		t.Error("offset should translate shapes")
	}
	if s.Get(0, 4) != ' ' {
		t.Error("untranslated position should stay blank")
	}
}

func TestCellCanvasTextAlign(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		start int
	}{
		{"left", AlignLeft, 40},
		{"center", AlignCenter, 38},
		{"right", AlignRight, 36},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, c := newTestCanvas()
			c.Text(400, 300, "ABCD", TextStyle{Align: tc.align, Color: Hex("#ffff00")})
			if s.Get(tc.start, 12) != 'A' || s.Get(tc.start+3, 12) != 'D' {
				t.Errorf("row = %q, expected text at column %d", s.Row(12), tc.start)
			}
			if s.GetCell(tc.start, 12).Color != ColorBrightYellow {
				t.Error("text should carry its color")
			}
		})
	}
}

func TestCellCanvasDarkTextTakesCellColor(t *testing.T) {
	s, c := newTestCanvas()
	c.FillRect(400, 300, 30, 25, Hex("#ffff00"))
	c.Text(400, 312, "S", TextStyle{Color: Hex("#000000")})

	cell := s.GetCell(40, 12)
	if cell.Rune != 'S' {
		t.Fatalf("rune = %q, want 'S'", cell.Rune)
	}
	if cell.Color != ColorBrightYellow {
		t.Errorf("color = %v, want the fill color", cell.Color)
	}
}

func TestPointInPolygon(t *testing.T) {
	tri := []Point{{0, 0}, {10, 0}, {5, 10}}
	if !pointInPolygon(5, 3, tri) {
		t.Error("point inside triangle not detected")
	}
	if pointInPolygon(0, 9, tri) {
		t.Error("point outside triangle reported inside")
	}
}
