package object

import (
	"github.com/tomz197/aimtrainer/internal/draw"
	"github.com/tomz197/aimtrainer/internal/physics"
)

// Target sizing, in logical units per tick.
const (
	TargetMaxSize    = 30.0
	TargetGrowthRate = 0.2
)

// Target ring colors.
var (
	TargetColor       = draw.Red
	TargetSecondColor = draw.White
)

// ringScales are the concentric ring radii relative to the target radius, outermost first.
var ringScales = [...]float64{1.0, 0.8, 0.6, 0.4}

// Target is a circle that grows to TargetMaxSize, then shrinks until it vanishes.
type Target struct {
	X, Y    float64 // Center
	Radius  float64
	Growing bool // Flips to false once at the peak and never back
}

// NewTarget creates a zero-radius growing target centered at (x, y).
func NewTarget(x, y float64) *Target {
	return &Target{X: x, Y: y, Growing: true}
}

// Update advances the target by one tick.
// The radius is not clamped at zero; callers remove the target once Radius <= 0.
func (t *Target) Update() {
	if t.Radius+TargetGrowthRate >= TargetMaxSize {
		t.Growing = false
	}

	if t.Growing {
		t.Radius += TargetGrowthRate
	} else {
		t.Radius -= TargetGrowthRate
	}
}

// Collide reports whether the logical point lies within the current radius.
func (t *Target) Collide(x, y float64) bool {
	return physics.PointInCircle(x, y, t.X, t.Y, t.Radius)
}

// Draw renders the target as a bullseye of alternating rings.
func (t *Target) Draw(ctx DrawContext) error {
	center := draw.Point{X: t.X, Y: t.Y}
	for i, scale := range ringScales {
		color := TargetColor
		if i%2 == 1 {
			color = TargetSecondColor
		}
		ctx.Canvas.FillCircle(center, t.Radius*scale, color)
	}
	return nil
}
