// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// PointInCircle reports whether the point lies within radius of the circle center,
// boundary included. A negative radius contains nothing.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	if radius < 0 {
		return false
	}
	return Distance(px, py, cx, cy) <= radius
}
