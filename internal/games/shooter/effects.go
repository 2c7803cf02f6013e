package shooter

import (
	"image/color"
	"math"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

const (
	damageNumberLife  = 0.8
	damageNumberSpeed = -60
	particleDrag      = 0.97
	shakeDecay        = 0.9
	shakeEpsilon      = 0.3
)

var (
	colorWhite  = core.Hex("#ffffff")
	colorCombo  = core.Hex("#ffff00")
	colorDamage = core.Hex("#ffaa44")
)

func (s *Session) spawnExplosion(x, y float64, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) + s.randRange(0, 0.5)
		speed := s.randRange(80, 240)
		life := s.randRange(0.4, 0.8)
		s.particles = append(s.particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Size:    s.randRange(2, 5),
			Color:   c,
		})
	}
}

func (s *Session) spawnHitSpark(x, y float64) {
	for i := 0; i < 5; i++ {
		life := s.randRange(0.15, 0.3)
		s.particles = append(s.particles, Particle{
			X:       x,
			Y:       y,
			VX:      s.randRange(-100, 100),
			VY:      s.randRange(-100, 100),
			Life:    life,
			MaxLife: life,
			Size:    s.randRange(1.5, 3),
			Color:   colorWhite,
		})
	}
}

func (s *Session) spawnDamageNumber(x, y float64, text string, c color.RGBA) {
	s.damageNumbers = append(s.damageNumbers, DamageNumber{
		X: x, Y: y, VY: damageNumberSpeed, Life: damageNumberLife, Text: text, Color: c,
	})
}

// decay winds down the transient scalars: shake, combo window and the
// level-up banner.
func (s *Session) decay(dt float64) {
	if s.shake > 0 {
		s.shake *= shakeDecay
	}
	if s.shake < shakeEpsilon {
		s.shake = 0
	}

	if s.comboTimer > 0 {
		s.comboTimer -= dt
		if s.comboTimer <= 0 {
			s.combo = 0
			s.comboTimer = 0
		}
	}

	s.levelUpDisplay = math.Max(0, s.levelUpDisplay-dt)
}

// ageEffects moves and expires particles and damage numbers.
func (s *Session) ageEffects(dt float64) {
	parts := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
		p.VX *= particleDrag
		p.VY *= particleDrag
		if p.Life > 0 {
			parts = append(parts, p)
		}
	}
	s.particles = parts

	nums := s.damageNumbers[:0]
	for _, d := range s.damageNumbers {
		d.Y += d.VY * dt
		d.Life -= dt
		if d.Life > 0 {
			nums = append(nums, d)
		}
	}
	s.damageNumbers = nums
}
