package shooter

import (
	"testing"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

func TestKillAwardsComboMultiplier(t *testing.T) {
	s := newRunning(t)

	wantScores := []int{10, 30, 60, 100, 150, 200, 250}
	for i, want := range wantScores {
		killOne(s, 10)
		if s.Score() != want {
			t.Fatalf("kill %d: score = %d, want %d", i+1, s.Score(), want)
		}
	}
	if combo, _ := s.Combo(); combo != 7 {
		t.Errorf("combo = %d, want 7", combo)
	}
	if s.ComboMultiplier() != 5 {
		t.Errorf("multiplier = %d, want capped at 5", s.ComboMultiplier())
	}
	if s.Killed() != 7 {
		t.Errorf("killed = %d, want 7", s.Killed())
	}
}

func TestKillFeedback(t *testing.T) {
	s := newRunning(t)

	killOne(s, 10)
	if len(s.Enemies()) != 0 || len(s.Bullets()) != 0 {
		t.Fatal("enemy and bullet should both be consumed")
	}
	// 5 hit sparks plus a 14 particle explosion
	if n := len(s.Particles()); n != 19 {
		t.Errorf("particles = %d, want 19", n)
	}
	nums := s.DamageNumbers()
	if len(nums) != 1 || nums[0].Text != "+10" || nums[0].Color != colorWhite {
		t.Errorf("damage numbers = %+v", nums)
	}

	killOne(s, 10)
	nums = s.DamageNumbers()
	if last := nums[len(nums)-1]; last.Text != "+20" || last.Color != colorCombo {
		t.Errorf("combo kill text = %+v, want yellow +20", last)
	}
}

func TestComboLapses(t *testing.T) {
	s := newRunning(t)
	killOne(s, 10)

	advance(s, 1.4, Intent{})
	if combo, _ := s.Combo(); combo != 1 {
		t.Fatalf("combo = %d inside the window", combo)
	}
	advance(s, 0.2, Intent{})
	if combo, timer := s.Combo(); combo != 0 || timer != 0 {
		t.Errorf("combo = %d timer = %v, want reset after the window", combo, timer)
	}

	killOne(s, 10)
	if s.Score() != 20 {
		t.Errorf("score = %d, want 20 with the multiplier back at 1", s.Score())
	}
}

func TestOneBulletPerEnemyPerFrame(t *testing.T) {
	s := newRunning(t)
	s.enemies = append(s.enemies, Enemy{
		Box: core.NewBox(100, 100, 44, 44), Kind: EnemyTank, HP: 3, MaxHP: 3, Points: 30,
	})
	for range 3 {
		s.bullets = append(s.bullets, Bullet{Box: core.NewBox(110, 110, 6, 14)})
	}

	s.collideBullets()

	if len(s.Enemies()) != 1 || s.Enemies()[0].HP != 2 {
		t.Fatalf("enemies = %+v, want one tank at 2 hp", s.Enemies())
	}
	if len(s.Bullets()) != 2 {
		t.Errorf("bullets = %d, want 2 left", len(s.Bullets()))
	}
	if s.Score() != 0 {
		t.Error("non-lethal hit should not score")
	}
	nums := s.DamageNumbers()
	if len(nums) != 1 || nums[0].Text != "1" || nums[0].Color != colorDamage {
		t.Errorf("damage numbers = %+v", nums)
	}
}

func TestEnemyBulletHitsOnce(t *testing.T) {
	s := newRunning(t)
	p := s.Player()
	for range 2 {
		s.enemyBullets = append(s.enemyBullets, Bullet{Box: core.NewBox(p.X+10, p.Y+10, 6, 6)})
	}

	s.collideEnemyBullets()
	if s.Player().Lives != 2 {
		t.Fatalf("lives = %d, want 2", s.Player().Lives)
	}
	if len(s.EnemyBullets()) != 1 {
		t.Errorf("enemy bullets = %d, want only the first consumed", len(s.EnemyBullets()))
	}

	s.collideEnemyBullets()
	if s.Player().Lives != 2 || len(s.EnemyBullets()) != 1 {
		t.Error("invincible player should ignore enemy bullets")
	}
}

func TestRammingEnemies(t *testing.T) {
	tests := []struct {
		kind     EnemyKind
		survives bool
	}{
		{EnemyBasic, false},
		{EnemyTank, false},
		{EnemyBoss, true},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s := newRunning(t)
			p := s.Player()
			s.enemies = append(s.enemies, Enemy{Box: core.NewBox(p.X, p.Y, 30, 30), Kind: tc.kind, HP: 5, MaxHP: 5})

			s.collideEnemies()

			if s.Player().Lives != 2 {
				t.Errorf("lives = %d, want 2", s.Player().Lives)
			}
			if got := len(s.Enemies()) == 1; got != tc.survives {
				t.Errorf("enemy survived = %v, want %v", got, tc.survives)
			}
			// 8 for the enemy, 10 for the ship
			if n := len(s.Particles()); n != 18 {
				t.Errorf("particles = %d, want 18", n)
			}
		})
	}
}

func TestHitPlayerInvincibility(t *testing.T) {
	s := newRunning(t)

	s.HitPlayer()
	p := s.Player()
	if p.Lives != 2 || !p.Invincible || p.InvincibleTimer != 2 {
		t.Fatalf("after hit: %+v", p)
	}
	if s.Shake() != 12 {
		t.Errorf("shake = %v, want 12", s.Shake())
	}

	s.HitPlayer()
	if s.Player().Lives != 2 {
		t.Error("second hit while invincible should be ignored")
	}

	advance(s, 2.05, Intent{})
	if s.Player().Invincible {
		t.Fatal("invincibility should wear off after 2s")
	}
	s.HitPlayer()
	if s.Player().Lives != 1 {
		t.Errorf("lives = %d, want 1", s.Player().Lives)
	}
}

func TestGameOverPersistsBest(t *testing.T) {
	tests := []struct {
		name    string
		stored  int
		score   int
		writes  int
		newBest bool
	}{
		{"beats stored", 0, 50, 1, true},
		{"below stored", 100, 50, 0, false},
		{"ties stored", 50, 50, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &recordingStore{best: tc.stored}
			s := newRunning(t, WithScoreStore(store))
			s.score = tc.score
			s.player.Lives = 1

			s.HitPlayer()

			if s.State() != StateGameOver {
				t.Fatalf("state = %v", s.State())
			}
			if len(store.writes) != tc.writes {
				t.Errorf("writes = %v", store.writes)
			}
			if s.NewBest() != tc.newBest {
				t.Errorf("new best = %v, want %v", s.NewBest(), tc.newBest)
			}
			if want := max(tc.stored, tc.score); s.HighScore() != want || store.best != want {
				t.Errorf("best = %d (stored %d), want %d", s.HighScore(), store.best, want)
			}
		})
	}
}

func TestGameOverIsFinal(t *testing.T) {
	s := newRunning(t)
	s.SpawnEnemy(EnemyBasic)
	s.player.Lives = 1
	s.HitPlayer()

	before := s.Snapshot()
	for range 20 {
		s.Update(0.05, Intent{MoveX: 1, Fire: true})
	}
	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("updates after game over changed the simulation")
	}
}

func TestPowerUps(t *testing.T) {
	tests := []struct {
		name  string
		kind  PowerUpKind
		lives int
		check func(t *testing.T, s *Session)
	}{
		{"heal", PowerHeal, 3, func(t *testing.T, s *Session) {
			if s.Player().Lives != 4 {
				t.Errorf("lives = %d, want 4", s.Player().Lives)
			}
		}},
		{"heal at max", PowerHeal, 5, func(t *testing.T, s *Session) {
			if s.Player().Lives != 5 {
				t.Errorf("lives = %d, want capped at 5", s.Player().Lives)
			}
		}},
		{"shield", PowerShield, 3, func(t *testing.T, s *Session) {
			if p := s.Player(); !p.Invincible || p.InvincibleTimer != 5 {
				t.Errorf("shield not applied: %+v", p)
			}
		}},
		{"score", PowerScore, 3, func(t *testing.T, s *Session) {
			if s.Score() != 100 {
				t.Errorf("score = %d, want 100", s.Score())
			}
		}},
		{"double", PowerDouble, 3, func(t *testing.T, s *Session) {
			if p := s.Player(); p.Weapon != WeaponDouble || p.WeaponTimer != 10 {
				t.Errorf("weapon = %v for %v", p.Weapon, p.WeaponTimer)
			}
		}},
		{"rapid", PowerRapid, 3, func(t *testing.T, s *Session) {
			if s.Player().Weapon != WeaponRapid || s.fireRate() != 0.1 {
				t.Errorf("rapid fire not applied")
			}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newRunning(t)
			s.player.Lives = tc.lives
			p := s.Player()
			s.SpawnPowerUp(tc.kind, p.X, p.Y, 0)

			s.collectPowerUps()

			if len(s.PowerUps()) != 0 {
				t.Fatal("power-up should be consumed")
			}
			_, desc, _ := tc.kind.Info()
			if nums := s.DamageNumbers(); len(nums) != 1 || nums[0].Text != desc {
				t.Errorf("pickup text = %+v, want %q", nums, desc)
			}
			tc.check(t, s)
		})
	}
}

func TestPowerUpLostBelowField(t *testing.T) {
	s := newRunning(t)
	s.SpawnPowerUp(PowerHeal, 0, 631, 0)
	s.SpawnPowerUp(PowerHeal, 0, 629, 0)

	s.collectPowerUps()

	if len(s.PowerUps()) != 1 || s.PowerUps()[0].Y != 629 {
		t.Errorf("power-ups = %+v, want only the one above the cutoff", s.PowerUps())
	}
}

func TestLevelThresholds(t *testing.T) {
	s := newRunning(t)
	for k := 1; k <= 6; k++ {
		s.LevelUp()
		if s.Level() != 1+k {
			t.Fatalf("level = %d, want %d", s.Level(), 1+k)
		}
		if want := 15 + 5*s.Level(); s.NextLevelAt() != want {
			t.Errorf("level %d: threshold = %d, want %d", s.Level(), s.NextLevelAt(), want)
		}
	}
}

func TestKillsTriggerLevelUp(t *testing.T) {
	s := newRunning(t)
	for range 15 {
		killOne(s, 10)
	}
	if s.Level() != 2 || s.Killed() != 0 || s.NextLevelAt() != 25 {
		t.Errorf("after 15 kills: level %d killed %d next %d", s.Level(), s.Killed(), s.NextLevelAt())
	}
	if s.levelUpDisplay != 2.5 {
		t.Errorf("level-up display = %v, want 2.5", s.levelUpDisplay)
	}
}

func TestBossScheduledOnThirdLevel(t *testing.T) {
	s := newRunning(t)
	for range 15 {
		killOne(s, 10)
	}
	if s.Level() != 2 || s.events.pending() != 0 {
		t.Fatalf("after 15 kills: level %d, %d pending events", s.Level(), s.events.pending())
	}

	for s.Killed() < s.NextLevelAt()-1 {
		killOne(s, 10)
	}
	if s.Level() != 2 || s.events.pending() != 0 {
		t.Fatalf("one kill short of level 3: level %d, %d pending events", s.Level(), s.events.pending())
	}
	killOne(s, 10)
	if s.Level() != 3 || s.NextLevelAt() != 30 {
		t.Fatalf("level %d next %d, want level 3 next 30", s.Level(), s.NextLevelAt())
	}
	if s.events.pending() != 1 {
		t.Fatal("reaching level 3 should schedule a boss")
	}

	advance(s, 1.4, Intent{})
	if s.bossAlive() {
		t.Fatal("boss spawned before the delay")
	}
	advance(s, 0.15, Intent{})
	if !s.bossAlive() {
		t.Fatal("boss should spawn 1.5s after the level-up")
	}
	if s.events.pending() != 0 {
		t.Error("event should be consumed")
	}
}

func TestBossSpawnSuppressedWhileAlive(t *testing.T) {
	s := newRunning(t)
	s.SpawnBoss()
	s.events.schedule(s.Now(), eventSpawnBoss)

	s.Update(0.01, Intent{})

	bosses := 0
	for _, e := range s.Enemies() {
		if e.Kind == EnemyBoss {
			bosses++
		}
	}
	if bosses != 1 {
		t.Errorf("bosses = %d, want 1", bosses)
	}
}

func TestBossKillDropsTriple(t *testing.T) {
	s := newRunning(t)
	boss := s.SpawnBoss()
	boss.X, boss.Y = 100, 100
	boss.HP = 1
	s.bullets = append(s.bullets, Bullet{Box: core.NewBox(130, 120, 6, 14)})

	s.collideBullets()

	if s.bossAlive() {
		t.Fatal("boss should be destroyed")
	}
	if s.Score() != 250 {
		t.Errorf("score = %d, want 250 for a level 1 boss", s.Score())
	}
	if s.Shake() != 15 {
		t.Errorf("shake = %v, want 15", s.Shake())
	}
	ups := s.PowerUps()
	if len(ups) != 1 || ups[0].Kind != PowerTriple {
		t.Fatalf("power-ups = %+v, want one triple", ups)
	}
	if ups[0].X != 128 || ups[0].Y != 130 {
		t.Errorf("drop at (%v, %v), want (128, 130)", ups[0].X, ups[0].Y)
	}
	// 5 sparks plus the 30 particle boss explosion
	if n := len(s.Particles()); n != 35 {
		t.Errorf("particles = %d, want 35", n)
	}
}
