package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pinball/internal/core"
)

// swatch describes how one screen color looks on dark and light terminals.
type swatch struct {
	dark, light string
	bold        bool
}

// tableColors is the playfield theme. Bright variants flash struck
// obstacles, so they are drawn bold as well.
var tableColors = map[core.Color]swatch{
	core.ColorRed:           {dark: "1", light: "1"},
	core.ColorGreen:         {dark: "2", light: "22"},
	core.ColorYellow:        {dark: "3", light: "136"},
	core.ColorBlue:          {dark: "4", light: "19"},
	core.ColorMagenta:       {dark: "5", light: "90"},
	core.ColorCyan:          {dark: "6", light: "30"},
	core.ColorWhite:         {dark: "7", light: "235"},
	core.ColorBrightRed:     {dark: "9", light: "160", bold: true},
	core.ColorBrightGreen:   {dark: "10", light: "28", bold: true},
	core.ColorBrightYellow:  {dark: "11", light: "172", bold: true},
	core.ColorBrightBlue:    {dark: "12", light: "21", bold: true},
	core.ColorBrightMagenta: {dark: "13", light: "127", bold: true},
	core.ColorBrightCyan:    {dark: "14", light: "37", bold: true},
	core.ColorBrightWhite:   {dark: "15", light: "16", bold: true},
	core.ColorOrange:        {dark: "208", light: "166"},
	core.ColorGray:          {dark: "245", light: "242"},
}

// Palette maps screen colors to lipgloss styles for one output.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds the table theme for a renderer. SSH sessions pass their
// own renderer so each client gets its terminal's color profile and
// background; nil uses the process default.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{
		styles: make(map[core.Color]lipgloss.Style, len(tableColors)),
		plain:  r.NewStyle(),
	}
	for c, sw := range tableColors {
		p.styles[c] = r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Dark: sw.dark, Light: sw.light}).
			Bold(sw.bold)
	}
	return p
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.plain
}

// Render converts a Screen buffer to a styled string. Adjacent cells with
// the same color share one escape sequence.
func (p Palette) Render(s *core.Screen) string {
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
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPalette = NewPalette(nil)

// RenderScreen renders s with the local terminal's palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}
