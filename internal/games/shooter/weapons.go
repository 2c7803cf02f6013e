package shooter

import (
	"image/color"
	"math"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

var (
	colorSingle    = core.Hex("#00ff88")
	colorDouble    = core.Hex("#00ffff")
	colorTriple    = core.Hex("#ff00ff")
	colorSpread    = core.Hex("#ffaa00")
	colorRapid     = core.Hex("#ff4444")
	colorEnemyShot = core.Hex("#ff6666")
)

const enemyBulletSize = 6.0

// fireRate returns the minimum seconds between shots for the current weapon.
func (s *Session) fireRate() float64 {
	if s.player.Weapon == WeaponRapid {
		return s.cfg.Player.RapidFireRate
	}
	return s.cfg.Player.FireRate
}

// Shoot fires the current weapon from the ship's nose. Calls closer together
// than the fire rate are ignored. It reports whether a volley was fired.
func (s *Session) Shoot() bool {
	if s.now-s.player.LastShot < s.fireRate() {
		return false
	}
	s.player.LastShot = s.now

	bx := s.player.X + s.player.W/2
	by := s.player.Y
	v := -s.cfg.Bullets.Speed

	shot := func(x, y, w, h, vx, vy float64, c color.RGBA) {
		s.bullets = append(s.bullets, Bullet{Box: core.NewBox(x, y, w, h), VX: vx, VY: vy, Color: c})
	}

	switch s.player.Weapon {
	case WeaponDouble:
		shot(bx-12, by+4, 6, 14, 0, v, colorDouble)
		shot(bx+6, by+4, 6, 14, 0, v, colorDouble)
	case WeaponTriple:
		shot(bx-3, by, 6, 14, 0, v, colorTriple)
		shot(bx-16, by+8, 6, 14, -40, v, colorTriple)
		shot(bx+10, by+8, 6, 14, 40, v, colorTriple)
	case WeaponSpread:
		for a := -2; a <= 2; a++ {
			shot(bx-3, by, 5, 12, float64(a)*60, v, colorSpread)
		}
	case WeaponRapid:
		shot(bx-3, by, 5, 10, 0, -s.cfg.Bullets.RapidSpeed, colorRapid)
	default:
		shot(bx-3, by, 6, 14, 0, v, colorSingle)
	}
	s.play(cuesShot)
	return true
}

// enemyShoot fires one bullet from e's belly toward the player's center.
func (s *Session) enemyShoot(e *Enemy) {
	ex, ey := e.Center()
	px, py := s.player.Center()
	dx, dy := px-ex, py-ey
	speed := s.cfg.Bullets.EnemySpeed

	vx, vy := 0.0, speed
	if dist := math.Hypot(dx, dy); dist > 0 {
		vx, vy = dx/dist*speed, dy/dist*speed
	}
	s.enemyBullets = append(s.enemyBullets, Bullet{
		Box:   core.NewBox(ex-enemyBulletSize/2, e.Bottom(), enemyBulletSize, enemyBulletSize),
		VX:    vx,
		VY:    vy,
		Color: colorEnemyShot,
	})
	s.play(cuesEnemyShot)
}
