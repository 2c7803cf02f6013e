package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-portal/internal/core"
	"github.com/vovakirdan/arcade-portal/internal/portal"
)

// MenuItem is one catalog game in the picker.
type MenuItem struct {
	GameID   string
	Title    string
	Emoji    string
	Blurb    string
	Playable bool
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
	next      MenuAction // Scoreboard or Pages when the user asked for them
	notice    string
}

// NewMenuModel lists the whole catalog with the cursor on the first
// playable game.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(portal.Catalog))
	for _, e := range portal.Catalog {
		items = append(items, MenuItem{
			GameID:   e.Slug,
			Title:    e.Title,
			Emoji:    e.Emoji,
			Blurb:    e.Description,
			Playable: portal.Playable(e.Slug),
		})
	}
	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, it := range items {
		if it.Playable {
			m.cursor = i
			break
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		it := m.items[m.cursor]
		if !it.Playable {
			m.notice = it.Title + " is only available on the web portal"
			return m, nil
		}
		m.selected = &it
		return m, tea.Quit

	case MenuActionScoreboard:
		m.next = MenuActionScoreboard
		return m, tea.Quit

	case MenuActionPages:
		m.next = MenuActionPages
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffcc00"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#44ffff"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("G A M E   P O R T A L"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s", cursor, it.Emoji, it.Title)
		switch {
		case !it.Playable:
			line = menuDimStyle.Render(line + "  (web)")
		case i == m.cursor:
			line = menuPickStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(m.items[m.cursor].Blurb), m.width))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.notice, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  G: Pages  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers a line or block within width, measuring printable cells.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	WantsPages      bool
	Quit            bool
}

// Result converts the final model state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.next == MenuActionScoreboard:
		r.WantsScoreboard = true
	case m.next == MenuActionPages:
		r.WantsPages = true
	case m.selected != nil:
		r.GameID = m.selected.GameID
	default:
		r.Quit = true
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
