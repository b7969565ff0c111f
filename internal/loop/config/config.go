// Package config centralizes all tunable game parameters.
package config

import (
	"time"

	"github.com/tomz197/aimtrainer/internal/draw"
)

// Logical surface - game objects use these dimensions.
// Actual rendering scales to fit the terminal.
const (
	Width  = 800
	Height = 600
)

// Layout
const (
	TopBarHeight  = 50
	TargetPadding = 30 // Keeps spawned centers away from the edges and the bar
)

// Session
const (
	Lives         = 5 // Misses allowed before the session ends
	SpawnInterval = 400 * time.Millisecond
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Render area clamp, in terminal cells. Larger terminals get a centered canvas.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 75
)

// Colors
var (
	BackgroundColor = draw.Color{R: 0, G: 25, B: 40}
	TopBarColor     = draw.Grey
	TopBarTextColor = draw.Black
	EndTextColor    = draw.White
)
