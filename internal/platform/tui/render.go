package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// palette maps core colors to terminal color codes. Bright colors are bold so
// high tiles stand out on terminals that render bright and normal alike.
var palette = map[core.Color]struct {
	fg   lipgloss.Color
	bold bool
}{
	core.ColorRed:           {fg: "1"},
	core.ColorGreen:         {fg: "2"},
	core.ColorYellow:        {fg: "3"},
	core.ColorBlue:          {fg: "4"},
	core.ColorMagenta:       {fg: "5"},
	core.ColorCyan:          {fg: "6"},
	core.ColorWhite:         {fg: "7"},
	core.ColorBrightRed:     {fg: "9", bold: true},
	core.ColorBrightGreen:   {fg: "10", bold: true},
	core.ColorBrightYellow:  {fg: "11", bold: true},
	core.ColorBrightBlue:    {fg: "12", bold: true},
	core.ColorBrightMagenta: {fg: "13", bold: true},
	core.ColorBrightCyan:    {fg: "14", bold: true},
	core.ColorBrightWhite:   {fg: "15", bold: true},
	core.ColorOrange:        {fg: "208"},
	core.ColorGray:          {fg: "245"},
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, p := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(p.fg).Bold(p.bold)
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
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
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderPlain converts a Screen buffer to a string without styling.
func RenderPlain(s *core.Screen) string {
	return s.String()
}
