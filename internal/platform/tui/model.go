package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/logging"
	"github.com/vovakirdan/arcade-portal/internal/registry"
)

// ScoreRecorder keeps the history of finished games. *storage.Store implements it.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Model is the Bubble Tea model for running one arcade game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	scores     ScoreRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       *HeldKeys
	now        func() time.Time
	gameState  core.GameState
	quitting   bool
	allowBack  bool // B returns to the menu when paused or over
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model for game. scores and logger may be nil.
func NewModel(game registry.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:    scores,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      NewHeldKeys(DefaultHoldWindow),
		now:       time.Now,
	}
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.keys.Release()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	action, quit := m.keyMapper.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		m.keys.Release()
		return m, nil
	}
	m.keys.Press(action, m.now())
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}
	result := m.game.Step(m.keys.Frame(m.now()))
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) recordScore() {
	if m.scores == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.scores.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("score not saved", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score)
}

// saveScreenshot writes the current screen as text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// WithBack lets B leave a paused or finished game.
func (m Model) WithBack() Model {
	m.allowBack = true
	return m
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a full-screen program for game.
func Run(game registry.Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, scores, logger, cfg),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
