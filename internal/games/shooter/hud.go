package shooter

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

var (
	colorGray    = core.Hex("#888888")
	colorLevel   = core.Hex("#ffcc00")
	colorTitle   = core.Hex("#00ffff")
	colorDanger  = core.Hex("#ff4444")
	colorOverlay = core.Hex("#0a0a1e")
)

func drawHUD(c core.Canvas, s *Session) {
	w, h := c.Size()
	p := s.player

	c.Text(12, 20, fmt.Sprintf("Score: %d", s.score), core.TextStyle{Size: 18, Bold: true, Color: colorWhite})
	c.Text(12, 42, fmt.Sprintf("Best: %d", s.highScore), core.TextStyle{Size: 12, Color: colorGray})

	c.Text(w/2, 22, fmt.Sprintf("Level %d", s.level), core.TextStyle{Size: 16, Bold: true, Align: core.AlignCenter, Color: colorLevel})
	const barW, barH = 100.0, 4.0
	progress := 0.0
	if s.nextLevelAt > 0 {
		progress = core.ClampF(float64(s.killed)/float64(s.nextLevelAt), 0, 1)
	}
	c.FillRect(w/2-barW/2, 34, barW, barH, colorBarBack)
	c.FillRect(w/2-barW/2, 34, barW*progress, barH, colorLevel)

	for i := 0; i < p.Lives; i++ {
		hx, hy := w-16-float64(i)*22, 14.0
		c.FillPolygon([]core.Point{
			{X: hx, Y: hy - 6},
			{X: hx + 7, Y: hy + 3},
			{X: hx, Y: hy + 8},
			{X: hx - 7, Y: hy + 3},
		}, p.Color)
	}

	if p.Weapon != WeaponSingle {
		label := fmt.Sprintf("%s %ds", p.Weapon, int(math.Ceil(p.WeaponTimer)))
		c.Text(w-12, 36, label, core.TextStyle{Size: 13, Bold: true, Align: core.AlignRight, Color: weaponColor(p.Weapon)})
	}

	if s.combo > 1 && s.comboTimer > 0 {
		c.SetAlpha(math.Min(1, s.comboTimer))
		c.Text(w/2, h-20, fmt.Sprintf("COMBO x%d", s.ComboMultiplier()), core.TextStyle{Size: 16, Bold: true, Align: core.AlignCenter, Color: colorCombo})
		c.SetAlpha(1)
	}

	if s.levelUpDisplay > 0 {
		c.SetAlpha(math.Min(1, s.levelUpDisplay))
		c.Text(w/2, h/2-30, fmt.Sprintf("LEVEL %d", s.level), core.TextStyle{Size: 28, Bold: true, Align: core.AlignCenter, Color: colorLevel})
		c.Text(w/2, h/2, "Enemies are getting stronger!", core.TextStyle{Size: 14, Align: core.AlignCenter, Color: colorLevel})
		c.SetAlpha(1)
	}
}

func weaponColor(w Weapon) color.RGBA {
	switch w {
	case WeaponDouble:
		return colorDouble
	case WeaponTriple:
		return colorTriple
	case WeaponSpread:
		return colorSpread
	case WeaponRapid:
		return colorRapid
	default:
		return colorWhite
	}
}

func drawTitle(c core.Canvas) {
	w, h := c.Size()
	center := func(y float64, s string, size float64, clr color.RGBA) {
		c.Text(w/2, y, s, core.TextStyle{Size: size, Bold: size >= 20, Align: core.AlignCenter, Color: clr})
	}
	center(h/2-60, "SPACE SHOOTER", 36, colorTitle)
	center(h/2-20, "Destroy enemies, collect power-ups, survive!", 14, colorWhite)
	center(h/2+20, "Arrows/WASD move  Space fire  P pause  M mute", 12, colorGray)
	center(h/2+60, "Press ENTER to start", 16, colorLevel)
}

func drawPaused(c core.Canvas) {
	w, h := c.Size()
	c.FillRect(0, 0, w, h, tint(colorBlack, 0.6))
	c.Text(w/2, h/2-10, "PAUSED", core.TextStyle{Size: 32, Bold: true, Align: core.AlignCenter, Color: colorWhite})
	c.Text(w/2, h/2+25, "Press P to resume", core.TextStyle{Size: 14, Align: core.AlignCenter, Color: colorGray})
}

func drawGameOver(c core.Canvas, s *Session) {
	w, h := c.Size()
	c.FillRect(w/2-180, h/2-110, 360, 220, colorOverlay)

	center := func(y float64, text string, size float64, clr color.RGBA) {
		c.Text(w/2, y, text, core.TextStyle{Size: size, Bold: size >= 20, Align: core.AlignCenter, Color: clr})
	}
	center(h/2-70, "GAME OVER", 32, colorDanger)
	center(h/2-30, fmt.Sprintf("Score: %d", s.score), 18, colorWhite)
	center(h/2-5, fmt.Sprintf("Best: %d", s.highScore), 14, colorGray)
	center(h/2+20, fmt.Sprintf("Level: %d", s.level), 14, colorLevel)
	if s.newBest {
		center(h/2+45, "NEW HIGH SCORE!", 16, colorCombo)
	}
	center(h/2+80, "Press R to restart", 14, colorGray)
}
