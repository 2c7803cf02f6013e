package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// Background is the terminal rendition of the deep-space backdrop.
const Background = lipgloss.Color("#05050f")

// colorStyles holds one style per cell color, all on the space background.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	base := lipgloss.NewStyle().Background(Background)
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: base}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		rgb, ok := c.RGB()
		if !ok {
			continue
		}
		hex := fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
		styles[c] = base.Foreground(lipgloss.Color(hex))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
