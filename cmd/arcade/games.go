package main

import (
	"fmt"
	"image/color"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/arcade-portal/internal/audio"
	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/games/shooter"
	"github.com/vovakirdan/arcade-portal/internal/platform/tui"
	"github.com/vovakirdan/arcade-portal/internal/registry"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

// runtimeConfig collects the global flags, sized to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Difficulty: flagDifficulty,
		ConfigPath: flagConfig,
		Muted:      flagMute,
	}
}

// openStore opens the database, or returns nil with a warning so games
// still run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openSound opens the speaker for terminal play. Without one the game is
// silent; done is always safe to call.
func openSound() (sound registry.Sound, done func()) {
	synth, err := audio.NewSynth()
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return nil, func() {}
	}
	return synth, synth.Close
}

// localDeps wires a game to the local player's best score in store.
func localDeps(store *storage.Store, sound registry.Sound, gameID string) registry.Deps {
	d := registry.Deps{Logger: logger.With("game", gameID), Sound: sound}
	if store != nil {
		d.BestScore = storage.NewSQLiteBestScore(store, tui.BestScoreKey(gameID, ""), logger)
	} else {
		d.BestScore = storage.NewMemoryBestScore(0)
	}
	return d
}

// newGame creates gameID, applying the --ship color to the shooter.
func newGame(gameID string, deps registry.Deps) (registry.Game, error) {
	if gameID != shooter.ID || flagShip == "" {
		return registry.Create(gameID, deps)
	}
	c, err := parseHexColor(flagShip)
	if err != nil {
		return nil, err
	}
	opts := append(shooter.FromDeps(deps), shooter.WithShipColor(c))
	return shooter.New(opts...), nil
}

func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 || len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q, expected #rrggbb", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// scoreRecorder avoids handing a typed nil store to the platforms.
func scoreRecorder(store *storage.Store) tui.ScoreRecorder {
	if store == nil {
		return nil
	}
	return store
}

// playInTerminal runs one game until the player quits.
func playInTerminal(gameID string, store *storage.Store, sound registry.Sound, cfg core.RuntimeConfig) error {
	game, err := newGame(gameID, localDeps(store, sound, gameID))
	if err != nil {
		return err
	}
	logger.Info("starting game", "game", gameID, "difficulty", cfg.Difficulty)
	return tui.Run(game, scoreRecorder(store), logger, cfg)
}

func requirePlayable(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	return nil
}
