package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-dash/internal/core"
)

type cellColors struct {
	fg, bg core.Color
}

// styleCache keeps one lipgloss style per colour pair.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) style(k cellColors) lipgloss.Style {
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if k.fg.A > 0 {
		st = st.Foreground(lipgloss.Color(core.Hex(k.fg)))
	}
	if k.bg.A > 0 {
		st = st.Background(lipgloss.Color(core.Hex(k.bg)))
	}
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderWith(s, make(styleCache))
}

func renderWith(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			key := colorsOf(s.Get(x, y))

			run.Reset()
			for x < s.Width() {
				cell := s.Get(x, y)
				if colorsOf(cell) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

func colorsOf(c core.Cell) cellColors {
	return cellColors{fg: c.FG, bg: c.BG}
}
