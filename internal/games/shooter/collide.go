package shooter

import (
	"fmt"
	"slices"
)

// collideEnemyBullets consumes the first enemy bullet touching the player.
func (s *Session) collideEnemyBullets() {
	if s.player.Invincible {
		return
	}
	for i := range s.enemyBullets {
		if s.enemyBullets[i].Overlaps(s.player.Box) {
			s.enemyBullets = slices.Delete(s.enemyBullets, i, i+1)
			s.HitPlayer()
			return
		}
	}
}

// collideEnemies rams the first enemy touching the player. Bosses survive
// the collision.
func (s *Session) collideEnemies() {
	if s.player.Invincible {
		return
	}
	for i := range s.enemies {
		e := s.enemies[i]
		if !e.Overlaps(s.player.Box) {
			continue
		}
		cx, cy := e.Center()
		s.spawnExplosion(cx, cy, e.Color, 8)
		if e.Kind != EnemyBoss {
			s.enemies = slices.Delete(s.enemies, i, i+1)
		}
		s.HitPlayer()
		return
	}
}

// collideBullets lets each enemy take at most one bullet per frame.
func (s *Session) collideBullets() {
	kept := s.enemies[:0]
	for i := range s.enemies {
		e := s.enemies[i]
		j := slices.IndexFunc(s.bullets, func(b Bullet) bool { return b.Overlaps(e.Box) })
		if j < 0 {
			kept = append(kept, e)
			continue
		}

		b := s.bullets[j]
		s.bullets = slices.Delete(s.bullets, j, j+1)
		s.spawnHitSpark(b.X+b.W/2, b.Y)
		e.HP--
		if e.HP <= 0 {
			s.kill(e)
			continue
		}

		s.play(cuesDamage)
		cx, _ := e.Center()
		s.spawnDamageNumber(cx, e.Y, "1", colorDamage)
		kept = append(kept, e)
	}
	s.enemies = kept
}

// kill scores a destroyed enemy and triggers its effects.
func (s *Session) kill(e Enemy) {
	prog := s.cfg.Progression
	s.combo++
	s.comboTimer = prog.ComboWindow
	mult := s.ComboMultiplier()
	pts := e.Points * mult
	s.score += pts
	s.killed++

	cx, cy := e.Center()
	textColor := colorWhite
	if mult > 1 {
		textColor = colorCombo
	}
	s.spawnDamageNumber(cx, e.Y, fmt.Sprintf("+%d", pts), textColor)

	if e.Kind == EnemyBoss {
		s.spawnExplosion(cx, cy, e.Color, 30)
		s.shake = 15
		s.play(cuesExplosion)
		s.SpawnPowerUp(PowerTriple, cx-s.cfg.PowerUps.Size/2, cy, 0)
	} else {
		s.spawnExplosion(cx, cy, e.Color, 14)
		s.play(cuesKill)
	}

	if s.killed >= s.nextLevelAt {
		s.LevelUp()
	}
}

// LevelUp advances to the next level and, on boss levels, schedules a boss.
func (s *Session) LevelUp() {
	prog := s.cfg.Progression
	s.level++
	s.killed = 0
	s.nextLevelAt = prog.BaseThreshold + prog.ThresholdPerLevel*s.level
	s.levelUpDisplay = prog.LevelUpDisplay
	s.play(cuesLevelUp)

	if s.level%s.cfg.Boss.EveryNLevels == 0 {
		s.events.schedule(s.now+s.cfg.Boss.SpawnDelay, eventSpawnBoss)
	}
	s.logger.Debug("level up", "level", s.level, "next", s.nextLevelAt)
}

// HitPlayer costs the player a life. Running out of lives ends the game;
// otherwise the ship becomes briefly invincible. It has no effect while the
// player is invincible or the session is not running.
func (s *Session) HitPlayer() {
	if s.state != StateRunning || s.player.Invincible {
		return
	}
	s.player.Lives--
	s.shake = 12
	s.play(cuesExplosion)
	cx, cy := s.player.Center()
	s.spawnExplosion(cx, cy, s.player.Color, 10)

	if s.player.Lives <= 0 {
		s.player.Lives = 0
		s.gameOver()
		return
	}
	s.player.Invincible = true
	s.player.InvincibleTimer = s.cfg.Player.HitInvincibility
}

// collectPowerUps applies pickups touching the player and drops the ones
// that fell off the bottom.
func (s *Session) collectPowerUps() {
	limit := s.cfg.Playfield.Height + 30
	kept := s.powerUps[:0]
	for _, p := range s.powerUps {
		switch {
		case p.Overlaps(s.player.Box):
			s.applyPowerUp(p)
		case p.Y > limit:
		default:
			kept = append(kept, p)
		}
	}
	s.powerUps = kept
}

func (s *Session) applyPowerUp(p PowerUp) {
	s.play(cuesPowerUp)
	_, desc, c := p.Kind.Info()
	s.spawnDamageNumber(p.X, p.Y, desc, c)

	if w, ok := p.Kind.weapon(); ok {
		s.player.Weapon = w
		s.player.WeaponTimer = s.cfg.PowerUps.WeaponDuration
		return
	}
	switch p.Kind {
	case PowerHeal:
		s.player.Lives = min(s.player.Lives+1, s.player.MaxLives)
	case PowerShield:
		s.player.Invincible = true
		s.player.InvincibleTimer = s.cfg.PowerUps.ShieldDuration
	case PowerScore:
		s.score += s.cfg.PowerUps.ScoreBonus
	}
}
