// Package draw renders a fixed logical surface onto a terminal using colored
// half-block characters.
package draw

import "fmt"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in logical coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Named colors used by the game.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
	Grey  = Color{190, 190, 190}
)

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// BlockUpperHalf is the half-block character every canvas cell is drawn with.
const BlockUpperHalf = '▀'
