// arcade is the game portal: it plays the portal's games in a terminal, a
// desktop window or over SSH, and manages published game pages.
//
// Usage:
//
//	arcade list                  - List the catalog and what is playable here
//	arcade play <game>           - Play a game in the terminal
//	arcade window <game>         - Play a game in a desktop window
//	arcade menu                  - Pick games interactively
//	arcade serve                 - Start SSH server for remote play
//	arcade scores <game>         - Show high scores for a game
//	arcade publish <game>        - Publish a page for a game
//	arcade pages                 - Browse your published pages
//	arcade unpublish <uuid>      - Delete one of your pages
//	arcade open <uuid>           - Play the game behind a page
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--difficulty <name>   - easy, normal, hard or fixed
//	--config <path>       - Custom game config YAML
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/arcade-portal/internal/games/shooter"
	"github.com/vovakirdan/arcade-portal/internal/logging"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagConfig     string
	flagMute       bool
	flagShip       string
	flagLogLevel   string
	flagLogFile    string
)

// logger is set up before every command runs.
var (
	logger  = logging.Discard()
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Game portal - play and publish arcade games",
	Long: `The game portal plays its games in your terminal, in a desktop window,
or over SSH, and lets you publish named pages that link to a game.

Examples:
  arcade list
  arcade play space-shooter
  arcade window space-shooter --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade publish space-shooter --name "Class 3B" --email lee@school.org
  arcade pages --email lee@school.org`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// setupLogging points the shared logger at --log-file, or at stderr when
// the file is "-". The SSH server owns no screen, so it logs to stderr
// unless a file is asked for.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if _, err := logging.ParseLevel(flagLogLevel); err != nil {
		return err
	}
	toStderr := flagLogFile == "-" || (cmd.Name() == "serve" && !cmd.Flags().Changed("log-file"))
	var w io.Writer = os.Stderr
	if !toStderr {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return err
		}
		logSink = f
		w = f
	}
	logger = logging.New(w, flagLogLevel, "arcade")
	log.SetDefault(logger)
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores and pages database")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound muted")
	pf.StringVar(&flagShip, "ship", "", "Ship color as #rrggbb")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", logging.DefaultFile, `Log file ("-" for stderr)`)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(unpublishCmd)
	rootCmd.AddCommand(openCmd)
}
