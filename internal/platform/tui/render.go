package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiletap/internal/core"
)

// ansiColors holds the terminal color of every core.Color.
// ColorDefault is absent: it keeps the terminal's foreground.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorPurple:        "93",
}

// styleFor returns the style cells of color c are rendered with.
func styleFor(c core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := ansiColors[c]; ok {
		style = style.Foreground(fg)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)
	lines := make([]string, s.Height())
	for y := range lines {
		lines[y] = renderRow(s, y, styles)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles one screen row. Runs of equally colored cells share one
// escape sequence; styles are cached per render.
func renderRow(s *core.Screen, y int, styles map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	var run []rune
	runColor := core.ColorDefault

	flush := func() {
		if len(run) == 0 {
			return
		}
		style, ok := styles[runColor]
		if !ok {
			style = styleFor(runColor)
			styles[runColor] = style
		}
		sb.WriteString(style.Render(string(run)))
		run = run[:0]
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return sb.String()
}
