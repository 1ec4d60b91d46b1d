package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// styleCache maps core.Color to lipgloss styles. Snake segments use many
// distinct hex colours, so styles are built on first use.
var styleCache = struct {
	sync.Mutex
	m map[core.Color]lipgloss.Style
}{m: map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
}}

func styleFor(c core.Color) lipgloss.Style {
	styleCache.Lock()
	defer styleCache.Unlock()

	style, ok := styleCache.m[c]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
		styleCache.m[c] = style
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GlyphAt(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.GlyphAt(x, y)
				if g.Color != startColor {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
