package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/copperhead/internal/config"
	"github.com/vovakirdan/copperhead/internal/core"
)

// Palette maps colour roles to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds styles from configured colours. A nil renderer uses the
// default renderer; SSH sessions pass their own so colours match the client.
func NewPalette(r *lipgloss.Renderer, colors map[string]string) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{core.ColorDefault: r.NewStyle()}
	for _, role := range core.Colors() {
		if c, ok := colors[role.String()]; ok && c != "" {
			p[role] = r.NewStyle().Foreground(lipgloss.Color(c))
		}
	}
	return p
}

// DefaultPalette returns the copper palette of the embedded configuration.
func DefaultPalette() Palette {
	return NewPalette(nil, config.Default().Display.Colors)
}

// Style returns the style for a role, falling back to the default style.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
