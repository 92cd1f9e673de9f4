package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/panda-pop/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorOrange:      "208",
	core.ColorGray:        "245",
	core.ColorDarkGray:    "238",
	core.ColorBrightWhite: "15",
}

// styleKey identifies a run of identically styled cells.
type styleKey struct {
	fg, bg core.Color
	bold   bool
}

func keyOf(c core.Cell) styleKey {
	return styleKey{fg: c.Fg, bg: c.Bg, bold: c.Bold}
}

// style builds the lipgloss style for k. ColorDefault leaves the terminal's
// own colors in place.
func (k styleKey) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c, ok := palette[k.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[k.bg]; ok {
		s = s.Background(c)
	}
	if k.bold {
		s = s.Bold(true)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(map[styleKey]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			st, ok := styles[start]
			if !ok {
				st = start.style()
				styles[start] = st
			}
			sb.WriteString(st.Render(run.String()))
		}
	}
	return sb.String()
}
