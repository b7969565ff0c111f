package object

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/aimtrainer/internal/draw"
)

// Label is a line of text anchored at a logical position.
type Label struct {
	X, Y     float64 // Top-left, or top-center when Centered
	Value    string
	Style    lipgloss.Style
	Centered bool
}

// Draw writes the styled text over the canvas and marks the covered cells dirty
// so the canvas repaints them once the text is gone.
func (l Label) Draw(ctx DrawContext) error {
	if l.Value == "" {
		return nil
	}

	text := l.Style.Render(l.Value)
	width := draw.TextWidth(text)

	x := l.X
	if l.Centered {
		x -= ctx.Canvas.ColumnsToLogical(width) / 2
	}

	col, row := ctx.Canvas.LogicalToTerminal(x, l.Y)
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}

	ctx.Writer.WriteAt(col, row, text)
	ctx.Canvas.MarkTextDirty(col, row, width)
	return nil
}
