package desktop

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/arcade-portal/internal/audio"
	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/logging"
	"github.com/vovakirdan/arcade-portal/internal/registry"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

// AppName names the per-user data directory best scores are kept in.
const AppName = "arcade-portal"

// ErrNotDrawable is returned for games that only render to terminal cells.
var ErrNotDrawable = errors.New("desktop: game cannot draw to a window")

// errQuit ends RunGame without reporting a failure.
var errQuit = errors.New("quit")

// drawable is a game that paints vector frames and has a world size.
type drawable interface {
	registry.Game
	Draw(c core.Canvas)
	Playfield() (w, h float64)
}

// ScoreRecorder keeps the history of finished games. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures a desktop run.
type Options struct {
	Runtime core.RuntimeConfig
	Scale   float64       // window size relative to the playfield; 0 means 1
	Scores  ScoreRecorder // optional score history
	Logger  *log.Logger
	// Create builds the game; nil uses registry.Create.
	Create func(gameID string, deps registry.Deps) (registry.Game, error)
}

// window adapts a drawable game to ebiten.Game.
type window struct {
	game      drawable
	fonts     *Fonts
	scores    ScoreRecorder
	logger    *log.Logger
	w, h      int
	state     core.GameState
	scoreSent bool
}

func (win *window) Update() error {
	in := readInput()
	if in.Has(core.ActionQuit) {
		return errQuit
	}
	win.state = win.game.Step(in).State

	switch {
	case win.state.GameOver && !win.scoreSent:
		win.scoreSent = true
		if win.scores != nil && win.state.Score > 0 {
			if _, err := win.scores.SaveScore(win.game.ID(), win.state.Score); err != nil {
				win.logger.Warn("score not saved", "err", err)
			}
		}
	case !win.state.GameOver:
		win.scoreSent = false
	}
	return nil
}

func (win *window) Draw(screen *ebiten.Image) {
	win.game.Draw(NewCanvas(screen, win.fonts))
}

func (win *window) Layout(int, int) (int, int) {
	return win.w, win.h
}

// Run opens a window and plays gameID until the window closes or Q is pressed.
func Run(gameID string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	synth, err := audio.NewSynth()
	var sound registry.Sound = synth
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		sound = audio.Nop{}
	} else {
		defer synth.Close()
	}

	create := opts.Create
	if create == nil {
		create = registry.Create
	}
	g, err := create(gameID, registry.Deps{
		Logger:    logger,
		BestScore: storage.OpenGDataBestScore(AppName, gameID, logger),
		Sound:     sound,
	})
	if err != nil {
		return err
	}
	d, ok := g.(drawable)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotDrawable, gameID)
	}
	d.Reset(opts.Runtime)

	fonts, err := LoadFonts()
	if err != nil {
		return fmt.Errorf("desktop: cannot load fonts: %w", err)
	}

	fw, fh := d.Playfield()
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	win := &window{
		game:   d,
		fonts:  fonts,
		scores: opts.Scores,
		logger: logger,
		w:      int(fw),
		h:      int(fh),
	}

	ebiten.SetWindowTitle(d.Title())
	ebiten.SetWindowSize(int(fw*scale), int(fh*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	logger.Info("window opened", "game", gameID, "size", fmt.Sprintf("%dx%d", win.w, win.h))
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}
