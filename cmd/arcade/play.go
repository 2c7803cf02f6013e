package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/platform/desktop"
	"github.com/vovakirdan/arcade-portal/internal/registry"
)

var flagScale float64

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD - Move
  Space       - Fire
  Enter       - Start
  P/Esc       - Pause
  M           - Mute
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives, slower enemies
  normal - The standard game
  hard   - Fewer lives, faster spawns
  fixed  - No level progression

Examples:
  arcade play space-shooter
  arcade play space-shooter --difficulty hard
  arcade play space-shooter --config ./my-shooter.yaml --ship "#ff44ff"`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window for the specified game, with sound. The best
score is kept in your user data directory.

Q quits; the other controls match 'arcade play'.

Examples:
  arcade window space-shooter
  arcade window space-shooter --scale 1.5 --mute`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := requirePlayable(gameID); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound, done := openSound()
	defer done()

	if err := playInTerminal(gameID, store, sound, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := requirePlayable(gameID); err != nil {
		return err
	}
	return playInWindow(gameID)
}

func playInWindow(gameID string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := desktop.Options{
		Runtime: runtimeConfig(),
		Scale:   flagScale,
		Logger:  logger.With("game", gameID),
		Create: func(id string, deps registry.Deps) (registry.Game, error) {
			return newGame(id, deps)
		},
	}
	if store != nil {
		opts.Scores = store
	}
	return desktop.Run(gameID, opts)
}
