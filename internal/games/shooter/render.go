package shooter

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

const blinkPeriod = 0.08 // seconds per on/off phase while invincible

var (
	colorBackground = core.Hex("#05050f")
	colorFlame      = core.Hex("#ff8800")
	colorShield     = core.Hex("#8888ff")
	colorBarBack    = core.Hex("#333333")
	colorBarGood    = core.Hex("#44ff44")
	colorBarLow     = core.Hex("#ff4444")
	colorBlack      = core.Hex("#000000")
)

// Renderer draws a session onto a Canvas. It never mutates the session;
// shake jitter and engine flicker come from its own random source.
type Renderer struct {
	rng *rand.Rand
}

// NewRenderer returns a renderer whose cosmetic randomness is seeded by seed.
func NewRenderer(seed uint64) *Renderer {
	return &Renderer{rng: rand.New(rand.NewPCG(seed, seed^0x5deece66d))}
}

// Draw paints the whole frame: the shaken world first, then the HUD and any
// overlay for the current state.
func (r *Renderer) Draw(c core.Canvas, s *Session) {
	w, h := c.Size()
	c.SetAlpha(1)
	c.SetOffset(0, 0)
	c.FillRect(-10, -10, w+20, h+20, colorBackground)

	if shake := s.Shake(); shake > 0 {
		c.SetOffset((r.rng.Float64()-0.5)*shake, (r.rng.Float64()-0.5)*shake)
	}
	r.drawWorld(c, s)

	c.SetOffset(0, 0)
	c.SetAlpha(1)
	switch s.State() {
	case StateNotStarted:
		drawTitle(c)
	case StateRunning:
		drawHUD(c, s)
	case StatePaused:
		drawHUD(c, s)
		drawPaused(c)
	case StateGameOver:
		drawHUD(c, s)
		drawGameOver(c, s)
	}
	if s.Muted() {
		c.Text(12, h-20, "MUTED", core.TextStyle{Size: 12, Color: colorGray})
	}
}

func (r *Renderer) drawWorld(c core.Canvas, s *Session) {
	for _, st := range s.stars {
		c.SetAlpha(st.Brightness)
		c.FillRect(st.X, st.Y, st.Size, st.Size, colorWhite)
	}
	c.SetAlpha(1)

	for _, p := range s.powerUps {
		drawPowerUp(c, p)
	}
	for _, e := range s.enemies {
		drawEnemy(c, e)
	}
	for _, b := range s.enemyBullets {
		cx, cy := b.Center()
		c.FillCircle(cx, cy, 4, b.Color)
	}
	for _, b := range s.bullets {
		c.FillRect(b.X, b.Y, b.W, b.H, b.Color)
	}

	p := s.player
	if !p.Invincible || int(math.Floor(s.now/blinkPeriod))%2 == 0 {
		r.drawPlayer(c, p)
	}
	if p.Invincible {
		cx, cy := p.Center()
		c.SetAlpha(0.4 + math.Sin(s.now/0.1)*0.3)
		c.StrokeCircle(cx, cy, p.W/2+8, 2, colorShield)
		c.SetAlpha(1)
	}

	for _, pt := range s.particles {
		c.SetAlpha(math.Max(0, pt.Life/pt.MaxLife))
		c.FillRect(pt.X-pt.Size/2, pt.Y-pt.Size/2, pt.Size, pt.Size, pt.Color)
	}
	for _, d := range s.damageNumbers {
		c.SetAlpha(math.Max(0, d.Life/damageNumberLife))
		c.Text(d.X, d.Y, d.Text, core.TextStyle{Size: 14, Bold: true, Align: core.AlignCenter, Color: d.Color})
	}
	c.SetAlpha(1)
}

func drawPowerUp(c core.Canvas, p PowerUp) {
	label, _, clr := p.Kind.Info()
	bob := math.Sin(p.BobPhase) * 3
	c.FillRect(p.X, p.Y+bob, p.W, p.H, clr)
	cx, cy := p.Center()
	c.Text(cx, cy+bob, label, core.TextStyle{Size: 14, Bold: true, Align: core.AlignCenter, Color: colorBlack})
}

func (r *Renderer) drawPlayer(c core.Canvas, p Player) {
	cx := p.X + p.W/2
	top, bottom := p.Y, p.Bottom()

	flame := 10 + r.rng.Float64()*6
	c.FillPolygon([]core.Point{
		{X: cx - 8, Y: bottom},
		{X: cx, Y: bottom + flame},
		{X: cx + 8, Y: bottom},
	}, colorFlame)

	c.FillPolygon([]core.Point{
		{X: cx, Y: top},
		{X: cx + p.W/2, Y: top + p.H*0.7},
		{X: cx + p.W/2 + 5, Y: bottom},
		{X: cx + 4, Y: top + p.H*0.8},
		{X: cx, Y: top + p.H*0.9},
		{X: cx - 4, Y: top + p.H*0.8},
		{X: cx - p.W/2 - 5, Y: bottom},
		{X: cx - p.W/2, Y: top + p.H*0.7},
	}, p.Color)

	c.SetAlpha(0.6)
	c.FillCircle(cx, top+p.H*0.4, 5, colorWhite)
	c.SetAlpha(1)
}

// enemyShape returns the outline of e as a closed polygon.
func enemyShape(e Enemy) []core.Point {
	cx, cy := e.Center()
	x0, x1 := e.X, e.Right()
	y0, y1 := e.Y, e.Bottom()
	w, h := e.W, e.H
	pt := func(x, y float64) core.Point { return core.Point{X: x, Y: y} }

	switch e.Kind {
	case EnemyFast:
		return []core.Point{pt(cx, y0), pt(x1, y1), pt(cx, y0+h*0.7), pt(x0, y1)}
	case EnemyTank:
		return []core.Point{
			pt(cx-w*0.3, y0), pt(cx+w*0.3, y0),
			pt(x1, y0+h*0.3), pt(x1, y0+h*0.7),
			pt(cx+w*0.3, y1), pt(cx-w*0.3, y1),
			pt(x0, y0+h*0.7), pt(x0, y0+h*0.3),
		}
	case EnemyZigzag:
		return []core.Point{pt(cx, y0), pt(x1, cy), pt(cx, y1), pt(x0, cy)}
	case EnemyShooter:
		return []core.Point{pt(x0, y0), pt(x1, y0), pt(cx+w*0.3, y0+h*0.6), pt(cx, y1), pt(cx-w*0.3, y0+h*0.6)}
	case EnemyBoss:
		return []core.Point{
			pt(x0, y0+10), pt(cx-w*0.3, y0), pt(cx+w*0.3, y0), pt(x1, y0+10),
			pt(x1, y0+h*0.7), pt(cx+w*0.3, y1), pt(cx+6, y0+h*0.8), pt(cx, y1),
			pt(cx-6, y0+h*0.8), pt(cx-w*0.3, y1), pt(x0, y0+h*0.7),
		}
	default:
		return []core.Point{pt(cx, y0), pt(x1, y0+h*0.5), pt(x1-4, y1), pt(x0+4, y1), pt(x0, y0+h*0.5)}
	}
}

func drawEnemy(c core.Canvas, e Enemy) {
	c.FillPolygon(enemyShape(e), e.Color)

	cx := e.X + e.W/2
	switch e.Kind {
	case EnemyShooter:
		c.SetAlpha(0.5)
		c.FillCircle(cx, e.Y+e.H*0.65, 3, colorWhite)
		c.SetAlpha(1)
	case EnemyBoss:
		eyeY := e.Y + e.H*0.35
		for _, dx := range []float64{-12, 12} {
			c.FillCircle(cx+dx, eyeY, 5, colorWhite)
			c.FillCircle(cx+dx, eyeY, 2.5, colorBlack)
		}
	}

	if e.MaxHP > 1 {
		frac := float64(e.HP) / float64(e.MaxHP)
		bar := colorBarGood
		if frac <= 0.3 {
			bar = colorBarLow
		}
		c.FillRect(e.X, e.Y-8, e.W, 4, colorBarBack)
		c.FillRect(e.X, e.Y-8, e.W*frac, 4, bar)
	}
}

// tint returns c with alpha a in [0,1].
func tint(c color.RGBA, a float64) color.RGBA {
	c.A = uint8(core.ClampF(a, 0, 1) * 255)
	return c
}
