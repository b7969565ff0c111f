package draw

import (
	"bytes"
	"strings"
	"testing"
)

// newTestCanvas maps 800x600 logical units onto 80x30 cells (80x60 sub-pixels),
// so one sub-pixel covers exactly 10x10 logical units.
func newTestCanvas() *Canvas {
	return NewScaledCanvas(80, 30, 800, 600)
}

func TestCanvas_FillCircle(t *testing.T) {
	c := newTestCanvas()
	c.Fill(Black)
	c.FillCircle(Point{X: 400, Y: 300}, 30, Red)

	if got := c.At(400, 300); got != Red {
		t.Errorf("center = %v, want %v", got, Red)
	}
	if got := c.At(420, 300); got != Red {
		t.Errorf("inside = %v, want %v", got, Red)
	}
	if got := c.At(450, 300); got != Black {
		t.Errorf("outside = %v, want %v", got, Black)
	}
}

func TestCanvas_FillCircle_NonPositiveRadius(t *testing.T) {
	c := newTestCanvas()
	c.Fill(Black)
	c.FillCircle(Point{X: 400, Y: 300}, 0, Red)
	c.FillCircle(Point{X: 400, Y: 300}, -0.1, Red)

	if got := c.At(400, 300); got != Black {
		t.Errorf("center = %v, want untouched %v", got, Black)
	}
}

func TestCanvas_FillCircle_SubPixel(t *testing.T) {
	c := newTestCanvas()
	c.Fill(Black)
	c.FillCircle(Point{X: 401, Y: 301}, 0.2, Red)

	if got := c.At(401, 301); got != Red {
		t.Errorf("tiny circle = %v, want %v", got, Red)
	}
}

func TestCanvas_FillRect(t *testing.T) {
	c := newTestCanvas()
	c.Fill(Black)
	c.FillRect(Rect{X: 0, Y: 0, W: 800, H: 50}, Grey)

	if got := c.At(5, 5); got != Grey {
		t.Errorf("bar = %v, want %v", got, Grey)
	}
	if got := c.At(795, 45); got != Grey {
		t.Errorf("bar corner = %v, want %v", got, Grey)
	}
	if got := c.At(400, 55); got != Black {
		t.Errorf("below bar = %v, want %v", got, Black)
	}
}

func TestCanvas_RenderOnlyChangedCells(t *testing.T) {
	c := newTestCanvas()
	c.Fill(Black)

	var first bytes.Buffer
	c.Render(&first)
	if got := strings.Count(first.String(), string(BlockUpperHalf)); got != 80*30 {
		t.Fatalf("first render cells = %d, want %d", got, 80*30)
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("unchanged render wrote %d bytes, want 0", second.Len())
	}

	c.FillRect(Rect{X: 0, Y: 0, W: 10, H: 20}, Red) // one cell: both sub-pixels
	var third bytes.Buffer
	c.Render(&third)
	if got := strings.Count(third.String(), string(BlockUpperHalf)); got != 1 {
		t.Errorf("changed render cells = %d, want 1", got)
	}
	if !strings.Contains(third.String(), "\033[38;2;255;0;0m") {
		t.Errorf("changed render missing red foreground: %q", third.String())
	}
}

func TestCanvas_MarkTextDirty(t *testing.T) {
	c := newTestCanvas()
	c.Fill(Black)
	c.Render(&bytes.Buffer{})

	c.MarkTextDirty(3, 2, 4)
	var buf bytes.Buffer
	c.Render(&buf)
	if got := strings.Count(buf.String(), string(BlockUpperHalf)); got != 4 {
		t.Errorf("dirty render cells = %d, want 4", got)
	}
	if !strings.HasPrefix(buf.String(), "\033[2;3H") {
		t.Errorf("dirty render should start at row 2 col 3, got %q", buf.String())
	}
}

func TestCanvas_ForceRedraw(t *testing.T) {
	c := newTestCanvas()
	c.Fill(Black)
	c.Render(&bytes.Buffer{})

	c.ForceRedraw()
	var buf bytes.Buffer
	c.Render(&buf)
	if got := strings.Count(buf.String(), string(BlockUpperHalf)); got != 80*30 {
		t.Errorf("forced render cells = %d, want %d", got, 80*30)
	}
}

func TestCanvas_TerminalToLogical(t *testing.T) {
	c := newTestCanvas()
	c.SetOffset(5, 2)

	x, y := c.TerminalToLogical(6, 3) // first canvas cell
	if x != 5 || y != 10 {
		t.Errorf("TerminalToLogical(6, 3) = (%v, %v), want (5, 10)", x, y)
	}

	col, row := c.LogicalToTerminal(x, y)
	if col != 1 || row != 1 {
		t.Errorf("LogicalToTerminal(%v, %v) = (%d, %d), want (1, 1)", x, y, col, row)
	}
}

func TestCanvas_ResizeKeepsLogicalSize(t *testing.T) {
	c := newTestCanvas()
	c.Resize(40, 15)

	if x, y := c.TerminalToLogical(40, 15); x != 790 || y != 580 {
		t.Errorf("TerminalToLogical(40, 15) = (%v, %v), want (790, 580)", x, y)
	}
	if got := c.ColumnsToLogical(4); got != 80 {
		t.Errorf("ColumnsToLogical(4) = %v, want 80", got)
	}
}

func TestColor_Hex(t *testing.T) {
	if got := (Color{0, 25, 40}).Hex(); got != "#001928" {
		t.Errorf("Hex() = %q, want %q", got, "#001928")
	}
}

func TestChunkWriter_Flush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	cw.WriteAt(1, 1, "Hits: 3")

	if out.Len() != 0 {
		t.Fatalf("output before Flush = %q, want empty", out.String())
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got, want := out.String(), "\033[2;3HHits: 3"; got != want {
		t.Errorf("Flush() wrote %q, want %q", got, want)
	}
}

func TestTextWidth_IgnoresStyling(t *testing.T) {
	styled := TextStyle(Black, Grey).Render("Lives: 5")
	if got := TextWidth(styled); got != len("Lives: 5") {
		t.Errorf("TextWidth() = %d, want %d", got, len("Lives: 5"))
	}
}
