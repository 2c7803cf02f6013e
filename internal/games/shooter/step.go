package shooter

import (
	"math"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

const (
	zigzagRate = 3.0 // radians per second
	bobRate    = 4.0
)

// Update advances a running session by dt seconds. It is a no-op in every
// other state. dt is clamped to [0, MaxDelta].
func (s *Session) Update(dt float64, in Intent) {
	if s.state != StateRunning {
		return
	}
	dt = ClampDelta(dt)
	s.now += dt

	s.runEvents()
	s.decay(dt)
	s.tickPlayerTimers(dt)
	s.movePlayer(dt, in)
	if in.Fire {
		s.Shoot()
	}

	s.integrate(dt)
	s.prune()

	s.collideEnemyBullets()
	if s.state != StateRunning {
		return
	}
	s.collideEnemies()
	if s.state != StateRunning {
		return
	}
	s.collideBullets()
	s.collectPowerUps()

	s.ageEffects(dt)
	s.runSpawners()
}

func (s *Session) tickPlayerTimers(dt float64) {
	p := &s.player
	if p.WeaponTimer > 0 {
		p.WeaponTimer -= dt
		if p.WeaponTimer <= 0 {
			p.Weapon = WeaponSingle
			p.WeaponTimer = 0
		}
	}
	if p.Invincible {
		p.InvincibleTimer -= dt
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
			p.InvincibleTimer = 0
		}
	}
}

// movePlayer applies held direction and keeps the ship inside the battle
// zone: the full width and the lower part of the playfield.
func (s *Session) movePlayer(dt float64, in Intent) {
	p := &s.player
	field := s.cfg.Playfield
	p.X += float64(sign(in.MoveX)) * p.Speed * dt
	p.Y += float64(sign(in.MoveY)) * p.Speed * dt
	p.X = core.ClampF(p.X, 0, field.Width-p.W)
	p.Y = core.ClampF(p.Y, field.Height*field.TopExclusion, field.Height-p.H)
}

func (s *Session) integrate(dt float64) {
	for i := range s.stars {
		s.stars[i].Y += s.stars[i].Speed * dt
	}
	for i := range s.bullets {
		b := &s.bullets[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}
	for i := range s.enemyBullets {
		b := &s.enemyBullets[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}
	for i := range s.enemies {
		s.moveEnemy(&s.enemies[i], dt)
	}
	for i := range s.powerUps {
		p := &s.powerUps[i]
		p.Y += p.Speed * dt
		p.BobPhase += bobRate * dt
	}
}

func (s *Session) moveEnemy(e *Enemy, dt float64) {
	width := s.cfg.Playfield.Width
	e.Y += e.Speed * dt

	switch e.Kind {
	case EnemyBasic, EnemyFast, EnemyTank:
	case EnemyZigzag:
		e.Zigzag.Phase += zigzagRate * dt
		e.X = core.ClampF(e.Zigzag.BaseX+math.Sin(e.Zigzag.Phase)*e.Zigzag.Amplitude, 0, width-e.W)
	case EnemyShooter:
		s.fireGun(e)
	case EnemyBoss:
		e.Y = math.Min(e.Y, s.cfg.Boss.TopY)
		e.X += e.Dir * s.cfg.Boss.MoveSpeed * dt
		if e.X <= 0 {
			e.X, e.Dir = 0, 1
		} else if e.X >= width-e.W {
			e.X, e.Dir = width-e.W, -1
		}
		s.fireGun(e)
	}
}

func (s *Session) fireGun(e *Enemy) {
	if s.now-e.Gun.LastShot > e.Gun.Interval {
		s.enemyShoot(e)
		e.Gun.LastShot = s.now
	}
}

// prune drops entities that left the playfield.
func (s *Session) prune() {
	w, h := s.cfg.Playfield.Width, s.cfg.Playfield.Height

	s.bullets = filter(s.bullets, func(b Bullet) bool {
		return b.Y >= -20 && b.X >= -20 && b.X <= w+20
	})
	s.enemyBullets = filter(s.enemyBullets, func(b Bullet) bool {
		return b.Y <= h+10 && b.Y >= -10 && b.X >= -10 && b.X <= w+10
	})
	s.enemies = filter(s.enemies, func(e Enemy) bool {
		return e.Y <= h+60
	})
	s.stars = filter(s.stars, func(st Star) bool {
		return st.Y <= h+5
	})
}

// filter keeps the elements for which keep returns true, reusing items'
// backing array.
func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
