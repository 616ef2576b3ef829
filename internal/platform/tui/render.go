package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// styleCache maps core.Color to lipgloss styles. Only used from View.
var styleCache = map[core.Color]lipgloss.Style{
	{}: lipgloss.NewStyle(),
}

// styleFor returns a foreground style for the color, ignoring alpha.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := styleCache[c]; ok {
		return style
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
