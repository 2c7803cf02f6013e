package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
)

// recordingStore remembers every best score written.
type recordingStore struct {
	best   int
	writes []int
}

func (r *recordingStore) Read() int { return r.best }

func (r *recordingStore) Write(score int) {
	r.best = score
	r.writes = append(r.writes, score)
}

// countingAudio counts cues.
type countingAudio struct {
	cues []core.Cue
}

func (a *countingAudio) PlayCue(c core.Cue) { a.cues = append(a.cues, c) }

// quietConfig never spawns enemies or power-ups on its own.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Spawning.EnemyInterval = 1e9
	cfg.Spawning.EnemyIntervalMin = 1e9
	cfg.Spawning.PowerUpInterval = 1e9
	return cfg
}

func newSession(t *testing.T, cfg config.ShooterConfig, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(cfg, append([]Option{WithSeed(1)}, opts...)...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// newRunning returns a started quiet session.
func newRunning(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s := newSession(t, quietConfig(), opts...)
	s.Start()
	return s
}

func advance(s *Session, seconds float64, in Intent) {
	for seconds > 1e-9 {
		dt := math.Min(seconds, MaxDelta)
		s.Update(dt, in)
		seconds -= dt
	}
}

// killOne places a basic enemy with a bullet on top of it and resolves
// bullet collisions.
func killOne(s *Session, points int) {
	s.enemies = append(s.enemies, Enemy{
		Box:    core.NewBox(100, 100, 36, 36),
		Kind:   EnemyBasic,
		HP:     1,
		MaxHP:  1,
		Points: points,
		Color:  core.Hex("#ff4444"),
	})
	s.bullets = append(s.bullets, Bullet{Box: core.NewBox(110, 110, 6, 14), VY: -500})
	s.collideBullets()
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
