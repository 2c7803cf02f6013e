package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/registry"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

// BestScoreKey names the best-score slot of a game for one player.
// The local player (empty user) uses the bare game ID.
func BestScoreKey(gameID, user string) string {
	if user == "" {
		return gameID
	}
	return gameID + "@" + user
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is one SSH connection. It switches between the menu, a game
// and the scoreboard inside a single Bubble Tea program, where the local CLI
// runs each of them as a program of its own.
type SessionModel struct {
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	user     string
	screen   sessionScreen
	menu     MenuModel
	game     Model
	board    ScoreboardModel
	quitting bool
}

// NewSessionModel starts a session on the menu. store may be nil.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, user string) SessionModel {
	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		user:   user,
		menu:   NewMenuModel(cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenGame:
		m, cmd = m.updateGame(msg)
	case screenScores:
		m, cmd = m.updateScores(msg)
	default:
		m, cmd = m.updateMenu(msg)
	}
	return m, cmd
}

// toMenu returns to a fresh menu, optionally showing notice.
func (m SessionModel) toMenu(notice string) SessionModel {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	m.menu.notice = notice
	return m
}

func (m SessionModel) updateMenu(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	if cmd == nil {
		return m, nil
	}

	// A non-nil command from the menu is its tea.Quit: the user chose.
	r := m.menu.Result()
	switch {
	case r.Quit:
		m.quitting = true
		return m, tea.Quit
	case r.WantsScoreboard:
		var source ScoreSource
		if m.store != nil {
			source = m.store
		}
		m.board = NewScoreboardModel(source, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.board.Init()
	case r.WantsPages:
		// Pages belong to an email address, which SSH users do not have.
		return m.toMenu("Pages are managed with the arcade CLI"), nil
	case r.GameID != "":
		return m.startGame(r.GameID)
	}
	return m, nil
}

func (m SessionModel) startGame(gameID string) (SessionModel, tea.Cmd) {
	game, err := registry.Create(gameID, m.deps(gameID))
	if err != nil {
		m.logger.Error("cannot create game", "game", gameID, "err", err)
		return m.toMenu(err.Error()), nil
	}
	var scores ScoreRecorder
	if m.store != nil {
		scores = m.store
	}
	m.game = NewModel(game, scores, m.logger, m.config).WithBack()
	m.screen = screenGame
	return m, m.game.Init()
}

// deps gives the game this user's best score. Sound stays nil, which keeps
// the game silent.
func (m SessionModel) deps(gameID string) registry.Deps {
	d := registry.Deps{Logger: m.logger, BestScore: storage.NewMemoryBestScore(0)}
	if m.store != nil {
		d.BestScore = storage.NewSQLiteBestScore(m.store, BestScoreKey(gameID, m.user), m.logger)
	}
	return d
}

func (m SessionModel) updateGame(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)
	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu(""), nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)
	switch {
	case m.board.IsGoingBack():
		return m.toMenu(""), nil
	case m.board.quitting:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.board.View()
	}
	return m.menu.View()
}
