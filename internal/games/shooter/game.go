package shooter

import (
	"github.com/vovakirdan/arcade-portal/internal/config"
	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "space-shooter"

// Game adapts a Session to registry.Game: each Step is one platform frame
// timed by the injected clock, and Render rasterizes onto a cell screen.
type Game struct {
	opts     []Option
	o        options
	session  *Session
	loop     *Loop
	renderer *Renderer
}

// New creates an unstarted game. Reset must be called before Step.
func New(opts ...Option) *Game {
	return &Game{opts: opts, o: buildOptions(opts)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Space Shooter" }

// Reset builds a fresh session from the YAML config, the difficulty preset
// and the runtime seed. Broken configuration falls back to the defaults.
func (g *Game) Reset(rc core.RuntimeConfig) {
	logger := g.o.logger

	cfg, err := config.LoadShooter(rc.ConfigPath)
	if err != nil {
		logger.Warn("shooter config rejected, using defaults", "path", rc.ConfigPath, "err", err)
		cfg = config.DefaultShooterConfig()
	}
	preset, err := config.ParsePreset(rc.Difficulty)
	if err != nil {
		logger.Warn("ignoring difficulty", "err", err)
		preset = config.DifficultyNormal
	}
	config.ApplyShooterPreset(&cfg, preset)

	seed := rc.Seed
	if seed == 0 {
		seed = g.o.now().UnixNano()
	}
	opts := append(append([]Option(nil), g.opts...), WithSeed(seed), WithMuted(rc.Muted || g.o.muted))

	s, err := NewSession(cfg, opts...)
	if err != nil {
		logger.Warn("invalid shooter config, using defaults", "err", err)
		s, _ = NewSession(config.DefaultShooterConfig(), opts...)
	}
	g.session = s
	g.loop = NewLoop(s)
	g.renderer = NewRenderer(uint64(seed)) //#nosec G115 -- seed bit pattern
}

// Step runs one frame at the injected clock's current time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.loop == nil {
		g.Reset(core.DefaultConfig())
	}
	g.loop.Frame(g.o.now(), IntentFromFrame(in))
	return core.StepResult{State: g.State()}
}

// Render rasterizes the playfield onto dst, scaled to fill it.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	field := g.session.cfg.Playfield
	g.Draw(core.NewCellCanvas(dst, field.Width, field.Height))
}

// Draw paints the current frame onto any canvas.
func (g *Game) Draw(c core.Canvas) {
	if g.session == nil {
		return
	}
	g.renderer.Draw(c, g.session)
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.session.State() == StatePaused,
	}
}

// Session returns the live session, or nil before Reset.
func (g *Game) Session() *Session { return g.session }

// Playfield returns the world size in the session's units.
func (g *Game) Playfield() (w, h float64) {
	if g.session == nil {
		d := config.DefaultShooterConfig().Playfield
		return d.Width, d.Height
	}
	return g.session.cfg.Playfield.Width, g.session.cfg.Playfield.Height
}

// FromDeps turns registry dependencies into options.
func FromDeps(d registry.Deps) []Option {
	var opts []Option
	if d.Logger != nil {
		opts = append(opts, WithLogger(d.Logger))
	}
	if d.BestScore != nil {
		opts = append(opts, WithScoreStore(d.BestScore))
	}
	if d.Sound != nil {
		opts = append(opts, WithAudio(d.Sound))
	}
	return opts
}

func init() {
	registry.Register(ID, func(d registry.Deps) registry.Game {
		return New(FromDeps(d)...)
	})
}
