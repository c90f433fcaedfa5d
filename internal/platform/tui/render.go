package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/StevenRydell/littlespace/internal/core"
)

// cellStyles holds one lipgloss style per palette entry. Colours come from
// core.Color.RGB so the terminal and the window agree; lipgloss degrades them
// to whatever the terminal profile supports.
var cellStyles = func() [core.ColorCount]lipgloss.Style {
	var styles [core.ColorCount]lipgloss.Style
	for c := range core.Color(core.ColorCount) {
		if c == core.ColorDefault {
			styles[c] = lipgloss.NewStyle()
			continue
		}
		r, g, b := c.RGB()
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(cellStyles) {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one colour so escapes are emitted per run,
// not per cell. Blank runs are written unstyled.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			blank := true

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				if cell.Rune != ' ' {
					blank = false
				}
				run.WriteRune(cell.Rune)
			}

			if blank {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(color).Render(run.String()))
			}
		}
	}
	return sb.String()
}
