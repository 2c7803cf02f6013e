package core

import "image/color"

// Align selects how Text is positioned horizontally around its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how a string is drawn on a Canvas.
type TextStyle struct {
	Size  float64 // font size in world units
	Bold  bool
	Align Align
	Color color.RGBA
}

// Point is a vertex in world coordinates.
type Point struct {
	X, Y float64
}

// Canvas is a fixed-size 2D drawing surface in world coordinates.
// Games issue primitives against it and never learn what backs it: a desktop
// window or a grid of terminal cells.
type Canvas interface {
	// Size returns the world dimensions of the surface.
	Size() (w, h float64)
	// SetOffset translates every following primitive by (dx, dy).
	SetOffset(dx, dy float64)
	// SetAlpha sets the global opacity in [0,1] for following primitives.
	SetAlpha(a float64)
	FillRect(x, y, w, h float64, c color.RGBA)
	FillPolygon(pts []Point, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	StrokeCircle(cx, cy, r, width float64, c color.RGBA)
	// Text draws s with its vertical center at y.
	Text(x, y float64, s string, st TextStyle)
}
