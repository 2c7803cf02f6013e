package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Shared pieces of the table screens (scoreboard and pages).

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(2, 4)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// boardChrome is the number of rows a board spends outside its table.
const boardChrome = 9

// boardKeys holds the bindings every board has plus the screen's extras,
// which are listed in help between the cursor keys and back/quit.
type boardKeys struct {
	Up, Down   key.Binding
	Back, Quit key.Binding
	extra      []key.Binding
}

func newBoardKeys(extra ...key.Binding) boardKeys {
	return boardKeys{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		extra: extra,
	}
}

func (k boardKeys) ShortHelp() []key.Binding {
	out := []key.Binding{k.Up, k.Down}
	out = append(out, k.extra...)
	return append(out, k.Back, k.Quit)
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// newTable builds a focused table in the arcade's colors.
func newTable(cols []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func tableHeight(screenHeight int) int {
	return max(3, screenHeight-boardChrome)
}

// board is the layout both table screens render into.
type board struct {
	title    string
	subtitle string
	table    table.Model
	empty    string // shown instead of the table when it has no rows
	status   string
	help     help.Model
	keys     boardKeys
	width    int
}

func (b board) render() string {
	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(centerText(boardTitleStyle.Render(b.title), b.width))
	s.WriteString("\n")
	if b.subtitle != "" {
		s.WriteString(centerText(boardDimStyle.Render(b.subtitle), b.width))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	content := b.table.View()
	if len(b.table.Rows()) == 0 {
		content = boardEmptyStyle.Render(b.empty)
	}
	s.WriteString(centerText(boardFrameStyle.Render(content), b.width))
	s.WriteString("\n")
	if b.status != "" {
		s.WriteString(b.status)
		s.WriteString("\n")
	}
	s.WriteString(boardDimStyle.Render(b.help.View(b.keys)))
	return s.String()
}
