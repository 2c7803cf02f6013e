package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-portal/internal/portal"
	"github.com/vovakirdan/arcade-portal/internal/storage"
)

// PageLister is the part of portal.Service the pages screen uses.
type PageLister interface {
	PagesByEmail(email string) ([]storage.Page, error)
	Delete(uuid, email string) error
}

// PagesModel lists the pages one email has published.
type PagesModel struct {
	pages     PageLister
	email     string
	base      string
	rows      []storage.Page
	openKey   key.Binding
	deleteKey key.Binding
	board     board
	open      *storage.Page
	goingBack bool
	quitting  bool
}

// NewPagesModel loads the pages of email. base prefixes share links.
func NewPagesModel(pages PageLister, email, base string, width, height int) PagesModel {
	m := PagesModel{
		pages:     pages,
		email:     email,
		base:      base,
		openKey:   key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "play")),
		deleteKey: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "unpublish")),
	}
	m.board = board{
		title: "MY PAGES - " + email,
		table: newTable([]table.Column{
			{Title: "Name", Width: 20},
			{Title: "Game", Width: 18},
			{Title: "Created", Width: 14},
			{Title: "Link", Width: 48},
		}, height),
		empty: "No pages yet.\nPublish one with: arcade publish <game> --name <name> --email <email>",
		help:  help.New(),
		keys:  newBoardKeys(m.openKey, m.deleteKey),
		width: width,
	}
	m.reload()
	return m
}

func (m *PagesModel) reload() {
	rows, err := m.pages.PagesByEmail(m.email)
	if err != nil {
		m.board.status = err.Error()
		rows = nil
	}
	m.rows = rows

	out := make([]table.Row, len(rows))
	for i, p := range rows {
		game := p.GameSlug
		if e, ok := portal.Lookup(p.GameSlug); ok {
			game = e.Emoji + " " + e.Title
		}
		out[i] = table.Row{
			p.PageName,
			game,
			p.CreatedAt.Local().Format("Jan 02 15:04"),
			portal.ShareLink(m.base, p.UUID),
		}
	}
	m.board.table.SetRows(out)
}

func (m PagesModel) Init() tea.Cmd { return nil }

func (m PagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.board.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.board.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.openKey):
			if p, ok := m.current(); ok {
				if !portal.Playable(p.GameSlug) {
					m.board.status = p.GameSlug + " is only playable on the web portal"
					return m, nil
				}
				m.open = &p
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.deleteKey):
			if p, ok := m.current(); ok {
				if err := m.pages.Delete(p.UUID, m.email); err != nil {
					m.board.status = err.Error()
				} else {
					m.board.status = fmt.Sprintf("unpublished %q", p.PageName)
				}
				m.reload()
			}
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

func (m PagesModel) current() (storage.Page, bool) {
	i := m.board.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return storage.Page{}, false
	}
	return m.rows[i], true
}

func (m PagesModel) View() string {
	if m.quitting || m.goingBack || m.open != nil {
		return ""
	}
	return m.board.render()
}

// PagesResult is what the user chose on the pages screen.
type PagesResult struct {
	Open   *storage.Page // page whose game should start
	GoBack bool
}

// RunPages runs the pages screen for email.
func RunPages(pages PageLister, email, base string, width, height int) (PagesResult, error) {
	p := tea.NewProgram(NewPagesModel(pages, email, base, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return PagesResult{}, err
	}
	m, ok := final.(PagesModel)
	if !ok {
		return PagesResult{}, nil
	}
	return PagesResult{Open: m.open, GoBack: m.goingBack}, nil
}
