package shooter

import (
	"testing"

	"github.com/vovakirdan/arcade-portal/internal/config"
)

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Playfield.Width = 0
	if _, err := NewSession(cfg); err == nil {
		t.Error("expected error for zero-width playfield")
	}
}

func TestNewSessionInitialState(t *testing.T) {
	store := &recordingStore{best: 420}
	s := newSession(t, config.DefaultShooterConfig(), WithScoreStore(store))

	if s.State() != StateNotStarted {
		t.Errorf("state = %v, want not-started", s.State())
	}
	if s.HighScore() != 420 {
		t.Errorf("high score = %d, want 420 from the store", s.HighScore())
	}
	if s.Level() != 1 || s.NextLevelAt() != 15 || s.Killed() != 0 {
		t.Errorf("progression = level %d, %d/%d", s.Level(), s.Killed(), s.NextLevelAt())
	}

	p := s.Player()
	if p.X != 380 || p.Y != 540 {
		t.Errorf("player at (%v, %v), want (380, 540)", p.X, p.Y)
	}
	if p.Lives != 3 || p.Weapon != WeaponSingle {
		t.Errorf("player lives %d weapon %v", p.Lives, p.Weapon)
	}
	if p.Color != DefaultShipColor {
		t.Errorf("ship color = %v", p.Color)
	}
}

func TestShipColorOption(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	s := newSession(t, cfg, WithShipColor(DefaultShipColor))
	if s.Player().Color != DefaultShipColor {
		t.Fatal("ship color not applied")
	}

	s = newSession(t, cfg, WithShipColor(colorDanger))
	s.Start()
	s.player.Lives = 1
	s.HitPlayer()
	s.Restart()
	if s.Player().Color != colorDanger {
		t.Error("ship color should survive restart")
	}
}

func TestStateTransitions(t *testing.T) {
	s := newSession(t, quietConfig())

	s.TogglePause()
	if s.State() != StateNotStarted {
		t.Error("pause before start should be ignored")
	}
	s.Restart()
	if s.State() != StateNotStarted {
		t.Error("restart before game over should be ignored")
	}

	s.Start()
	if s.State() != StateRunning {
		t.Fatalf("state = %v after start", s.State())
	}
	s.TogglePause()
	if s.State() != StatePaused {
		t.Fatalf("state = %v after pause", s.State())
	}
	s.TogglePause()
	if s.State() != StateRunning {
		t.Fatalf("state = %v after resume", s.State())
	}

	s.player.Lives = 1
	s.HitPlayer()
	if s.State() != StateGameOver {
		t.Fatalf("state = %v after last life", s.State())
	}
	s.TogglePause()
	if s.State() != StateGameOver {
		t.Error("pause should not leave game over")
	}
	s.Start()
	if s.State() != StateGameOver {
		t.Error("start should not leave game over")
	}
	s.Restart()
	if s.State() != StateRunning {
		t.Errorf("state = %v after restart", s.State())
	}
}

func TestUpdateIsNoOpUnlessRunning(t *testing.T) {
	s := newSession(t, quietConfig())
	x := s.Player().X

	s.Update(0.05, Intent{MoveX: 1})
	if s.Now() != 0 || s.Player().X != x {
		t.Error("update before start should do nothing")
	}

	s.Start()
	s.TogglePause()
	s.Update(0.05, Intent{MoveX: 1})
	if s.Now() != 0 || s.Player().X != x {
		t.Error("update while paused should do nothing")
	}
}

func TestRestartResetsEverything(t *testing.T) {
	store := &recordingStore{}
	s := newRunning(t, WithScoreStore(store))

	for range 5 {
		killOne(s, 10)
	}
	s.LevelUp()
	s.LevelUp()
	if s.events.pending() != 1 {
		t.Fatalf("pending events = %d, want a scheduled boss", s.events.pending())
	}
	s.SpawnEnemy(EnemyTank)
	s.SpawnPowerUp(PowerShield, 0, 0, 0)
	s.player.Weapon = WeaponSpread
	s.player.WeaponTimer = 4

	s.player.Lives = 1
	s.player.Invincible = false
	s.HitPlayer()
	if s.State() != StateGameOver {
		t.Fatal("expected game over")
	}
	best := s.Score()

	s.Restart()

	if s.Score() != 0 || s.Level() != 1 || s.Killed() != 0 || s.NextLevelAt() != 15 {
		t.Errorf("progression not reset: score %d level %d killed %d next %d",
			s.Score(), s.Level(), s.Killed(), s.NextLevelAt())
	}
	if combo, timer := s.Combo(); combo != 0 || timer != 0 {
		t.Errorf("combo not reset: %d %v", combo, timer)
	}
	if len(s.Enemies()) != 0 || len(s.Bullets()) != 0 || len(s.PowerUps()) != 0 || len(s.EnemyBullets()) != 0 {
		t.Error("entity stores should be empty")
	}
	if s.events.pending() != 0 {
		t.Error("scheduled boss should be discarded")
	}
	p := s.Player()
	if p.Lives != 3 || p.Weapon != WeaponSingle || p.Invincible {
		t.Errorf("player not reset: %+v", p)
	}
	if s.HighScore() != best || s.NewBest() {
		t.Errorf("high score = %d new best %v, want %d re-read from the store", s.HighScore(), s.NewBest(), best)
	}
}

func TestMuteSuppressesCues(t *testing.T) {
	audio := &countingAudio{}
	s := newRunning(t, WithAudio(audio), WithMuted(true))

	s.Shoot()
	s.LevelUp()
	killOne(s, 10)
	if len(audio.cues) != 0 {
		t.Fatalf("muted session played %d cues", len(audio.cues))
	}

	s.ToggleMute()
	s.LevelUp()
	if len(audio.cues) != len(cuesLevelUp) {
		t.Errorf("cues = %d, want %d", len(audio.cues), len(cuesLevelUp))
	}
}
