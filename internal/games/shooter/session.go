// Package shooter implements Space Shooter: a real-time arcade simulation
// driven by a clamped-delta loop. All mutable game state lives in a Session;
// platforms feed it Intents and draw it through a Renderer.
package shooter

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
)

// State is the session lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// DefaultShipColor is the player's ship color unless overridden.
var DefaultShipColor = core.Hex("#00ffff")

type options struct {
	store     ScoreStore
	audio     AudioSink
	logger    *log.Logger
	seed      int64
	muted     bool
	shipColor color.RGBA
	now       func() time.Time
}

// Option configures a Session or a Game.
type Option func(*options)

// WithScoreStore persists the best score through s.
func WithScoreStore(s ScoreStore) Option { return func(o *options) { o.store = s } }

// WithAudio routes sound cues to a.
func WithAudio(a AudioSink) Option { return func(o *options) { o.audio = a } }

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option { return func(o *options) { o.seed = seed } }

// WithMuted starts with audio muted.
func WithMuted(m bool) Option { return func(o *options) { o.muted = m } }

// WithShipColor paints the player's ship.
func WithShipColor(c color.RGBA) Option { return func(o *options) { o.shipColor = c } }

// WithClock replaces the wall clock used by Game.Step.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

func buildOptions(opts []Option) options {
	o := options{shipColor: DefaultShipColor, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = &volatileScore{}
	}
	if o.audio == nil {
		o.audio = silentAudio{}
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}

// Session is the whole game state. It is not safe for concurrent use; one
// loop owns it.
type Session struct {
	cfg    config.ShooterConfig
	store  ScoreStore
	audio  AudioSink
	logger *log.Logger
	rng    *rand.Rand

	state State
	muted bool
	now   float64 // seconds of running time

	player        Player
	bullets       []Bullet
	enemyBullets  []Bullet
	enemies       []Enemy
	powerUps      []PowerUp
	stars         []Star
	particles     []Particle
	damageNumbers []DamageNumber

	score          int
	highScore      int
	newBest        bool
	level          int
	killed         int
	nextLevelAt    int
	combo          int
	comboTimer     float64
	levelUpDisplay float64
	shake          float64

	lastEnemySpawn   float64
	lastPowerUpSpawn float64
	lastStarSpawn    float64
	events           eventQueue
}

// NewSession builds a session in StateNotStarted. The best score is read
// from the store once here and again on every restart.
func NewSession(cfg config.ShooterConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("shooter: %w", err)
	}
	o := buildOptions(opts)

	s := &Session{
		cfg:    cfg,
		store:  o.store,
		audio:  o.audio,
		logger: o.logger,
		rng:    rand.New(rand.NewPCG(uint64(o.seed), 0x9e3779b97f4a7c15)), //#nosec G115 -- bit pattern only
		muted:  o.muted,
	}
	s.player.Color = o.shipColor
	s.reset()
	return s, nil
}

// reset reinitializes every store and counter. The clock keeps running so
// timestamps stay monotonic.
func (s *Session) reset() {
	p := s.cfg.Player
	field := s.cfg.Playfield
	s.player = Player{
		Box:      core.NewBox((field.Width-p.Width)/2, field.Height-p.Height-20, p.Width, p.Height),
		Speed:    p.Speed,
		Lives:    p.Lives,
		MaxLives: p.MaxLives,
		Weapon:   WeaponSingle,
		LastShot: math.Inf(-1),
		Color:    s.player.Color,
	}

	s.bullets = s.bullets[:0]
	s.enemyBullets = s.enemyBullets[:0]
	s.enemies = s.enemies[:0]
	s.powerUps = s.powerUps[:0]
	s.particles = s.particles[:0]
	s.damageNumbers = s.damageNumbers[:0]
	s.events.clear()

	s.score = 0
	s.newBest = false
	s.level = 1
	s.killed = 0
	s.nextLevelAt = s.cfg.Progression.BaseThreshold
	s.combo = 0
	s.comboTimer = 0
	s.levelUpDisplay = 0
	s.shake = 0
	s.highScore = s.store.Read()
	s.resetSpawnTimers()
}

func (s *Session) resetSpawnTimers() {
	s.lastEnemySpawn = s.now
	s.lastPowerUpSpawn = s.now
	s.lastStarSpawn = s.now
}

// Start leaves the title screen. It has no effect in any other state.
func (s *Session) Start() {
	if s.state != StateNotStarted {
		return
	}
	s.resetSpawnTimers()
	s.state = StateRunning
	s.logger.Debug("session started", "best", s.highScore)
}

// TogglePause flips between running and paused.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
}

// ToggleMute flips audio on or off.
func (s *Session) ToggleMute() {
	s.muted = !s.muted
}

// Restart begins a fresh game from game over.
func (s *Session) Restart() {
	if s.state != StateGameOver {
		return
	}
	s.reset()
	s.state = StateRunning
	s.logger.Debug("session restarted")
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	if s.score > s.highScore {
		s.highScore = s.score
		s.newBest = true
		s.store.Write(s.score)
	}
	s.logger.Debug("game over", "score", s.score, "level", s.level, "best", s.highScore)
}

func (s *Session) play(cues []core.Cue) {
	if s.muted {
		return
	}
	for _, c := range cues {
		s.audio.PlayCue(c)
	}
}

func (s *Session) randRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Now returns the running-time clock in seconds.
func (s *Session) Now() float64 { return s.now }

// Muted reports whether audio is muted.
func (s *Session) Muted() bool { return s.muted }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// NewBest reports whether the finished game set a new best score.
func (s *Session) NewBest() bool { return s.newBest }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Killed returns kills counted toward the next level.
func (s *Session) Killed() int { return s.killed }

// NextLevelAt returns the kills needed to leave the current level.
func (s *Session) NextLevelAt() int { return s.nextLevelAt }

// Combo returns the consecutive kill count and its remaining window.
func (s *Session) Combo() (int, float64) { return s.combo, s.comboTimer }

// ComboMultiplier returns the score multiplier of the current combo.
func (s *Session) ComboMultiplier() int {
	return max(1, min(s.combo, s.cfg.Progression.ComboCap))
}

// Shake returns the screen shake magnitude.
func (s *Session) Shake() float64 { return s.shake }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Enemies returns the live enemies. Callers must not modify the slice.
func (s *Session) Enemies() []Enemy { return s.enemies }

// Bullets returns the player's projectiles.
func (s *Session) Bullets() []Bullet { return s.bullets }

// EnemyBullets returns the enemies' projectiles.
func (s *Session) EnemyBullets() []Bullet { return s.enemyBullets }

// PowerUps returns the pickups in flight.
func (s *Session) PowerUps() []PowerUp { return s.powerUps }

// Particles returns the cosmetic particles.
func (s *Session) Particles() []Particle { return s.particles }

// DamageNumbers returns the floating texts.
func (s *Session) DamageNumbers() []DamageNumber { return s.damageNumbers }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.ShooterConfig { return s.cfg }
