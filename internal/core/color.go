package core

import (
	"fmt"
	"image/color"
)

// Color is a terminal foreground color for a screen cell.
// The zero value leaves the terminal's default color in place.
type Color uint8

// Terminal palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette holds the approximate RGB of every terminal color, used to map
// world colors onto the nearest cell color.
var palette = [...]struct {
	c   Color
	rgb color.RGBA
}{
	{ColorRed, color.RGBA{0xcc, 0x22, 0x22, 0xff}},
	{ColorGreen, color.RGBA{0x22, 0xaa, 0x22, 0xff}},
	{ColorYellow, color.RGBA{0xcc, 0xaa, 0x00, 0xff}},
	{ColorBlue, color.RGBA{0x22, 0x44, 0xcc, 0xff}},
	{ColorMagenta, color.RGBA{0xaa, 0x22, 0xaa, 0xff}},
	{ColorCyan, color.RGBA{0x22, 0xaa, 0xaa, 0xff}},
	{ColorWhite, color.RGBA{0xcc, 0xcc, 0xcc, 0xff}},
	{ColorBrightRed, color.RGBA{0xff, 0x44, 0x44, 0xff}},
	{ColorBrightGreen, color.RGBA{0x44, 0xff, 0x44, 0xff}},
	{ColorBrightYellow, color.RGBA{0xff, 0xff, 0x44, 0xff}},
	{ColorBrightBlue, color.RGBA{0x88, 0x88, 0xff, 0xff}},
	{ColorBrightMagenta, color.RGBA{0xff, 0x44, 0xff, 0xff}},
	{ColorBrightCyan, color.RGBA{0x44, 0xff, 0xff, 0xff}},
	{ColorBrightWhite, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	{ColorOrange, color.RGBA{0xff, 0x88, 0x00, 0xff}},
	{ColorGray, color.RGBA{0x80, 0x80, 0x80, 0xff}},
}

// NearestColor returns the palette color closest to c by squared RGB distance.
func NearestColor(c color.RGBA) Color {
	best := ColorDefault
	bestDist := -1
	for _, p := range palette {
		dr := int(c.R) - int(p.rgb.R)
		dg := int(c.G) - int(p.rgb.G)
		db := int(c.B) - int(p.rgb.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.c, d
		}
	}
	return best
}

// Hex parses a "#rrggbb" literal into an opaque RGBA color.
// It panics on malformed input and is meant for package-level constants.
func Hex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		panic(fmt.Sprintf("core: bad hex color %q: %v", s, err))
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// RGB returns the approximate color of c. It reports false for ColorDefault
// and unknown values.
func (c Color) RGB() (color.RGBA, bool) {
	for _, p := range palette {
		if p.c == c {
			return p.rgb, true
		}
	}
	return color.RGBA{}, false
}
