// Package desktop runs arcade games in a native window with Ebitengine,
// with real audio and a per-user best score in the OS app data directory.
package desktop

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Fonts holds the regular and bold font sources text is drawn with.
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	size float64
	bold bool
}

// LoadFonts parses the bundled Go Mono faces.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, err
	}
	return &Fonts{regular: regular, bold: bold, faces: make(map[faceKey]*text.GoTextFace)}, nil
}

func (f *Fonts) face(size float64, bold bool) *text.GoTextFace {
	k := faceKey{size, bold}
	if face, ok := f.faces[k]; ok {
		return face
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face := &text.GoTextFace{Source: src, Size: size, Direction: text.DirectionLeftToRight}
	f.faces[k] = face
	return face
}

// Canvas draws world primitives onto an ebiten image whose size equals
// the world size.
type Canvas struct {
	dst    *ebiten.Image
	fonts  *Fonts
	w, h   float64
	dx, dy float64
	alpha  float64
}

// NewCanvas wraps dst for one frame.
func NewCanvas(dst *ebiten.Image, fonts *Fonts) *Canvas {
	b := dst.Bounds()
	return &Canvas{dst: dst, fonts: fonts, w: float64(b.Dx()), h: float64(b.Dy()), alpha: 1}
}

func (c *Canvas) Size() (float64, float64) { return c.w, c.h }

func (c *Canvas) SetOffset(dx, dy float64) { c.dx, c.dy = dx, dy }

func (c *Canvas) SetAlpha(a float64) { c.alpha = core.ClampF(a, 0, 1) }

func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	vector.DrawFilledRect(c.dst, f32(x+c.dx), f32(y+c.dy), f32(w), f32(h), fade(clr, c.alpha), true)
}

func (c *Canvas) FillPolygon(pts []core.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(f32(pts[0].X+c.dx), f32(pts[0].Y+c.dy))
	for _, p := range pts[1:] {
		path.LineTo(f32(p.X+c.dx), f32(p.Y+c.dy))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := rgbaFloats(fade(clr, c.alpha))
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	vector.DrawFilledCircle(c.dst, f32(cx+c.dx), f32(cy+c.dy), f32(r), fade(clr, c.alpha), true)
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.RGBA) {
	vector.StrokeCircle(c.dst, f32(cx+c.dx), f32(cy+c.dy), f32(r), f32(width), fade(clr, c.alpha), true)
}

func (c *Canvas) Text(x, y float64, s string, st core.TextStyle) {
	if c.fonts == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+c.dx, y+c.dy)
	op.ColorScale.ScaleWithColor(fade(st.Color, c.alpha))
	op.PrimaryAlign = textAlign(st.Align)
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.fonts.face(st.Size, st.Bold), op)
}

func textAlign(a core.Align) text.Align {
	switch a {
	case core.AlignCenter:
		return text.AlignCenter
	case core.AlignRight:
		return text.AlignEnd
	}
	return text.AlignStart
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	scale := func(v uint8) uint8 { return uint8(math.Round(float64(v) * alpha)) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

func rgbaFloats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}

func f32(v float64) float32 { return float32(v) }
