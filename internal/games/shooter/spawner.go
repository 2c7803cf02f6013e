package shooter

import (
	"math"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
)

var regularKinds = [...]EnemyKind{EnemyBasic, EnemyFast, EnemyZigzag, EnemyTank, EnemyShooter}

func (s *Session) stats(k EnemyKind) config.EnemyStats {
	e := s.cfg.Enemies
	switch k {
	case EnemyFast:
		return e.Fast
	case EnemyTank:
		return e.Tank
	case EnemyZigzag:
		return e.Zigzag
	case EnemyShooter:
		return e.Shooter
	case EnemyBoss:
		return s.cfg.Boss.EnemyStats
	default:
		return e.Basic
	}
}

// EnemyInterval returns the enemy spawn interval in seconds at level.
func EnemyInterval(sp config.ShooterSpawning, level int) float64 {
	return math.Max(sp.EnemyIntervalMin, sp.EnemyInterval-sp.EnemyIntervalCut*float64(level-1))
}

// UnlockedKinds returns the regular enemy kinds available at level, in
// unlock order.
func (s *Session) UnlockedKinds(level int) []EnemyKind {
	kinds := make([]EnemyKind, 0, len(regularKinds))
	for _, k := range regularKinds {
		if level >= s.stats(k).UnlockLevel {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// SpawnEnemy adds a regular enemy of kind k just above the playfield at a
// random x. Stats scale with the current level.
func (s *Session) SpawnEnemy(k EnemyKind) *Enemy {
	if k == EnemyBoss {
		return s.SpawnBoss()
	}
	st := s.stats(k)
	field := s.cfg.Playfield
	lvl := float64(s.level - 1)

	e := Enemy{
		Box:    core.NewBox(s.randRange(0, field.Width-st.Width), -st.Height, st.Width, st.Height),
		Kind:   k,
		Speed:  st.Speed + lvl*s.cfg.Enemies.SpeedPerLevel,
		HP:     st.HP,
		MaxHP:  st.HP,
		Points: st.Points,
		Color:  core.Hex(st.Color),
	}
	switch k {
	case EnemyZigzag:
		e.Zigzag = ZigzagMotion{
			Phase:     s.randRange(0, 2*math.Pi),
			Amplitude: s.randRange(80, 140),
			BaseX:     e.X,
		}
	case EnemyShooter:
		e.Gun = Gun{Interval: st.FireInterval, LastShot: math.Inf(-1)}
	}
	s.enemies = append(s.enemies, e)
	return &s.enemies[len(s.enemies)-1]
}

// SpawnBoss adds a boss centered above the playfield.
func (s *Session) SpawnBoss() *Enemy {
	b := s.cfg.Boss
	field := s.cfg.Playfield
	hp := b.HP + (s.level-1)*b.HPPerLevel

	s.enemies = append(s.enemies, Enemy{
		Box:    core.NewBox(field.Width/2-b.Width/2, -b.Height, b.Width, b.Height),
		Kind:   EnemyBoss,
		Speed:  b.Speed,
		HP:     hp,
		MaxHP:  hp,
		Points: b.Points + s.level*b.PointsPerLevel,
		Color:  core.Hex(b.Color),
		Gun:    Gun{Interval: b.FireInterval, LastShot: math.Inf(-1)},
		Dir:    1,
	})
	s.shake = 10
	s.play(cuesBossSpawn)
	s.logger.Debug("boss spawned", "level", s.level, "hp", hp)
	return &s.enemies[len(s.enemies)-1]
}

// SpawnPowerUp drops a pickup of kind k at (x, y).
func (s *Session) SpawnPowerUp(k PowerUpKind, x, y, bobPhase float64) *PowerUp {
	size := s.cfg.PowerUps.Size
	s.powerUps = append(s.powerUps, PowerUp{
		Box:      core.NewBox(x, y, size, size),
		Kind:     k,
		Speed:    s.cfg.PowerUps.Speed,
		BobPhase: bobPhase,
	})
	return &s.powerUps[len(s.powerUps)-1]
}

func (s *Session) spawnRandomEnemy() {
	kinds := s.UnlockedKinds(s.level)
	if len(kinds) == 0 {
		return
	}
	s.SpawnEnemy(kinds[s.rng.IntN(len(kinds))])
}

func (s *Session) spawnRandomPowerUp() {
	size := s.cfg.PowerUps.Size
	k := PowerUpKind(s.rng.IntN(int(powerUpKinds)))
	s.SpawnPowerUp(k, s.randRange(0, s.cfg.Playfield.Width-size), -size, s.randRange(0, 2*math.Pi))
}

func (s *Session) spawnStar() {
	s.stars = append(s.stars, Star{
		X:          s.randRange(0, s.cfg.Playfield.Width),
		Y:          -2,
		Size:       s.randRange(0.5, 3),
		Speed:      s.randRange(20, 60),
		Brightness: s.randRange(0.3, 1),
	})
}

// runSpawners fires every accumulator whose interval has elapsed.
func (s *Session) runSpawners() {
	sp := s.cfg.Spawning
	if s.now-s.lastEnemySpawn > EnemyInterval(sp, s.level) {
		s.spawnRandomEnemy()
		s.lastEnemySpawn = s.now
	}
	if s.now-s.lastPowerUpSpawn > sp.PowerUpInterval {
		s.spawnRandomPowerUp()
		s.lastPowerUpSpawn = s.now
	}
	if s.now-s.lastStarSpawn > sp.StarInterval {
		s.spawnStar()
		s.lastStarSpawn = s.now
	}
}
