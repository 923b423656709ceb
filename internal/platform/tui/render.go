package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme maps core.Color classes to lipgloss styles.
type Theme struct {
	styles map[core.Color]lipgloss.Style
	base   lipgloss.Style
}

// tileValues lists the tile values with their own color class, in class order.
var tileValues = [...]int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048}

// NewTheme builds styles from the configured palette.
// A nil renderer uses the default renderer for the local terminal; SSH
// sessions pass a per-session renderer so color detection follows the client.
func NewTheme(cfg config.ThemeConfig, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	t := Theme{
		base: r.NewStyle(),
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:     r.NewStyle(),
			core.ColorRed:         r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			core.ColorYellow:      foreground(r.NewStyle().Bold(true), cfg.Accent),
			core.ColorCyan:        r.NewStyle().Foreground(lipgloss.Color("6")),
			core.ColorGray:        foreground(r.NewStyle(), cfg.Grid),
			core.ColorBrightWhite: r.NewStyle().Foreground(lipgloss.Color("15")),
			core.ColorTileEmpty:   background(r.NewStyle(), cfg.Empty),
		},
	}

	for _, v := range tileValues {
		fg := cfg.DarkText
		if v <= 4 {
			fg = cfg.Text
		}
		style := foreground(background(r.NewStyle().Bold(true), cfg.Tiles[v]), fg)
		t.styles[core.TileColor(v)] = style
	}
	t.styles[core.ColorTileSuper] = foreground(background(r.NewStyle().Bold(true), cfg.Super), cfg.DarkText)

	return t
}

func foreground(s lipgloss.Style, c string) lipgloss.Style {
	if c == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(c))
}

func background(s lipgloss.Style, c string) lipgloss.Style {
	if c == "" {
		return s
	}
	return s.Background(lipgloss.Color(c))
}

// Style returns the style for a color class, or the plain style when unknown.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.styles[c]; ok {
		return style
	}
	return t.base
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
