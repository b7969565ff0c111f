package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// textRenderer is pinned to TrueColor so label colors match the canvas regardless
// of what the process's own stdout supports (SSH sessions render for the remote side).
var textRenderer = newTextRenderer()

func newTextRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// TextStyle returns a style drawing fg text over bg.
func TextStyle(fg, bg Color) lipgloss.Style {
	return textRenderer.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
}

// TextWidth returns the printable width of s in terminal columns, ignoring escape codes.
func TextWidth(s string) int {
	return lipgloss.Width(s)
}
