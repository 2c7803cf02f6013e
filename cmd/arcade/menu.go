package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-portal/internal/platform/tui"
	"github.com/vovakirdan/arcade-portal/internal/portal"
)

var flagMenuEmail string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the portal with a game picker menu",
	Long: `Start the portal in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play game
  Tab          - High scores
  G            - Your pages (needs --email)
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --email me@example.com`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuEmail, "email", "", "Email whose pages the G screen shows")
	menuCmd.Flags().StringVar(&flagBaseURL, "base-url", defaultBaseURL, "Portal address used in share links")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound, done := openSound()
	defer done()

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			var source tui.ScoreSource
			if store != nil {
				source = store
			}
			goBack, err := tui.RunScoreboard(source, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case result.WantsPages:
			if store == nil || flagMenuEmail == "" {
				fmt.Fprintln(os.Stderr, "Pages need a database and --email.")
				continue
			}
			svc := portal.NewService(store, logger)
			res, err := tui.RunPages(svc, flagMenuEmail, flagBaseURL, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if res.Open != nil {
				if err := playInTerminal(res.Open.GameSlug, store, sound, cfg); err != nil {
					logger.Error("game failed", "game", res.Open.GameSlug, "err", err)
				}
				continue
			}
			if !res.GoBack {
				return nil
			}

		case result.GameID != "":
			// Every round gets a fresh seed unless one was pinned.
			if err := playInTerminal(result.GameID, store, sound, cfg); err != nil {
				logger.Error("game failed", "game", result.GameID, "err", err)
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
		}
	}
}
