package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a color buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
//
// Render only emits cells that changed since the previous Render, so callers
// writing text on top of the canvas must call MarkTextDirty for those cells.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]

	// Last rendered state per terminal cell
	prev      []cell
	prevValid bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area inside a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

type cell struct {
	top, bottom Color
	dirty       bool
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the terminal dimensions the canvas occupies.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A size change invalidates the previous frame.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
		c.prevValid = false
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.prevValid = false
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell.
func (c *Canvas) ForceRedraw() {
	c.prevValid = false
}

// MarkTextDirty marks width cells starting at the 1-based canvas position (col, row)
// so they are repainted on the next Render.
func (c *Canvas) MarkTextDirty(col, row, width int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+width; x++ {
		if x >= 0 && x < c.termWidth {
			c.prev[r*c.termWidth+x].dirty = true
		}
	}
}

// Fill paints every pixel with the given color.
func (c *Canvas) Fill(color Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// At returns the color of the pixel covering the logical position.
func (c *Canvas) At(x, y float64) Color {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return Color{}
	}
	return c.pixels[py*c.termWidth+px]
}

// FillRect fills a logical rectangle.
func (c *Canvas) FillRect(r Rect, color Color) {
	x0 := int(math.Round(r.X * c.scaleX))
	y0 := int(math.Round(r.Y * c.scaleY))
	x1 := int(math.Round((r.X + r.W) * c.scaleX))
	y1 := int(math.Round((r.Y + r.H) * c.scaleY))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.setPixel(x, y, color)
		}
	}
}

// FillCircle fills every pixel whose center lies within radius of center.
// Coordinates and radius are logical. A positive radius smaller than a pixel
// still marks the pixel under the center.
func (c *Canvas) FillCircle(center Point, radius float64, color Color) {
	if radius <= 0 {
		return
	}

	c.setPixel(int(math.Floor(center.X*c.scaleX)), int(math.Floor(center.Y*c.scaleY)), color)

	xStart := int(math.Floor((center.X - radius) * c.scaleX))
	xEnd := int(math.Ceil((center.X + radius) * c.scaleX))
	yStart := int(math.Floor((center.Y - radius) * c.scaleY))
	yEnd := int(math.Ceil((center.Y + radius) * c.scaleY))
	r2 := radius * radius

	for py := yStart; py <= yEnd; py++ {
		ly := (float64(py)+0.5)/c.scaleY - center.Y
		for px := xStart; px <= xEnd; px++ {
			lx := (float64(px)+0.5)/c.scaleX - center.X
			if lx*lx+ly*ly <= r2 {
				c.setPixel(px, py, color)
			}
		}
	}
}

// Render outputs the changed cells to the writer using upper half-blocks:
// the foreground color is the top sub-pixel, the background the bottom one.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	var fg, bg Color
	colorsSet := false
	nextCol, nextRow := -1, -1 // Where the cursor sits after the last write

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			p := &c.prev[row*c.termWidth+col]
			if c.prevValid && !p.dirty && p.top == top && p.bottom == bottom {
				continue
			}
			*p = cell{top: top, bottom: bottom}

			if col != nextCol || row != nextRow {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if !colorsSet || fg != top {
				c.writeColor("\033[38;2;", top)
				fg = top
			}
			if !colorsSet || bg != bottom {
				c.writeColor("\033[48;2;", bottom)
				bg = bottom
			}
			colorsSet = true

			c.renderBuf.WriteRune(BlockUpperHalf)
			nextCol, nextRow = col+1, row
		}
	}

	if colorsSet {
		c.renderBuf.WriteString(ResetAttributes)
	}
	c.prevValid = true

	io.WriteString(w, c.renderBuf.String())
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) writeColor(prefix string, color Color) {
	c.renderBuf.WriteString(prefix)
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(color.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(color.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(color.B), 10))
	c.renderBuf.WriteByte('m')
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
// The centering offset is not included; ChunkWriter applies it.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based absolute terminal position (as reported by
// the mouse) to the logical coordinates of that cell's center.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	x = (float64(col-1-c.offsetCol) + 0.5) / c.scaleX
	y = (float64(row-1-c.offsetRow)*2 + 1) / c.scaleY
	return x, y
}

// ColumnsToLogical converts a width in terminal columns to logical units.
func (c *Canvas) ColumnsToLogical(cols int) float64 {
	return float64(cols) / c.scaleX
}
