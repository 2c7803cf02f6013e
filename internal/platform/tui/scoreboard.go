package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-portal/internal/portal"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

// scoreboardLimit caps the rows loaded per game.
const scoreboardLimit = 100

// ScoreSource is the score history the scoreboard reads.
// *storage.Store implements it.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// ScoreboardModel shows the recorded runs of each game playable here,
// one game at a time.
type ScoreboardModel struct {
	games     []portal.Entry
	current   int
	source    ScoreSource
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	next      key.Binding
	prev      key.Binding
	board     board
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over source, which may be nil.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
	}
	for _, e := range portal.Catalog {
		if portal.Playable(e.Slug) {
			m.games = append(m.games, e)
		}
	}
	m.board = board{
		table: newTable([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Played", Width: 20},
		}, height),
		empty: "No scores recorded yet.\nPlay a game to set a high score!",
		help:  help.New(),
		keys:  newBoardKeys(m.next, m.prev),
		width: width,
	}
	m.show(0)
	return m
}

// show loads the history of games[i].
func (m *ScoreboardModel) show(i int) {
	m.board.title = "HIGH SCORES"
	m.scores, m.stats = nil, nil
	if len(m.games) == 0 {
		m.board.table.SetRows(nil)
		return
	}
	m.current = i
	g := m.games[i]
	m.board.title = fmt.Sprintf("HIGH SCORES - %s %s", g.Emoji, g.Title)

	if m.source != nil {
		if scores, err := m.source.TopScores(g.Slug, scoreboardLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.source.GetGameStats(g.Slug); err == nil {
			m.stats = stats
		}
	}
	m.board.subtitle = m.summary()

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.board.table.SetRows(rows)
	m.board.table.GotoTop()
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no games played"
	}
	return fmt.Sprintf("%d games  |  best %d  |  average %.0f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.games)
		switch {
		case key.Matches(msg, m.board.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.board.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.next) && n > 0:
			m.show((m.current + 1) % n)
			return m, nil
		case key.Matches(msg, m.prev) && n > 0:
			m.show((m.current + n - 1) % n)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.board.width = msg.Width
		m.board.help.Width = msg.Width
		m.board.table.SetHeight(tableHeight(msg.Height))
		return m, nil
	}

	var cmd tea.Cmd
	m.board.table, cmd = m.board.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	return m.board.render()
}

// IsGoingBack reports whether the user left for the menu rather than quitting.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard as its own program and reports whether
// the user asked to go back to the menu.
func RunScoreboard(source ScoreSource, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
