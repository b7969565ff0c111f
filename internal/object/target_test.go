package object

import (
	"bytes"
	"math"
	"testing"

	"github.com/tomz197/aimtrainer/internal/draw"
)

const epsilon = 1e-9

func TestNewTarget(t *testing.T) {
	target := NewTarget(100, 100)

	if target.Radius != 0 {
		t.Errorf("Radius = %v, want 0", target.Radius)
	}
	if !target.Growing {
		t.Error("new target should be growing")
	}
}

func TestTarget_UpdateGrowsThenShrinks(t *testing.T) {
	target := NewTarget(100, 100)

	for i := 0; i < 10; i++ {
		target.Update()
	}
	if math.Abs(target.Radius-2.0) > epsilon {
		t.Errorf("Radius after 10 ticks = %v, want 2.0", target.Radius)
	}

	for i := 10; i < 150; i++ {
		target.Update()
	}
	if math.Abs(target.Radius-TargetMaxSize) > epsilon {
		t.Errorf("Radius after 150 ticks = %v, want %v", target.Radius, TargetMaxSize)
	}

	ticks := 150
	for target.Radius > 0 {
		target.Update()
		ticks++
		if ticks > 1000 {
			t.Fatal("target never shrank to zero")
		}
	}
	if ticks != 300 {
		t.Errorf("ticks until radius <= 0 = %d, want 300", ticks)
	}
	if target.Radius < -TargetGrowthRate {
		t.Errorf("final Radius = %v, overshoots by more than one step", target.Radius)
	}
}

func TestTarget_RadiusIsUnimodal(t *testing.T) {
	target := NewTarget(0, 0)
	prev := target.Radius
	shrinking := false

	for i := 0; i < 300; i++ {
		target.Update()

		if target.Radius > TargetMaxSize {
			t.Fatalf("tick %d: Radius %v exceeds max", i+1, target.Radius)
		}
		if target.Radius < prev {
			shrinking = true
		}
		if shrinking && target.Radius > prev {
			t.Fatalf("tick %d: Radius grew after shrinking (%v -> %v)", i+1, prev, target.Radius)
		}
		if shrinking && target.Growing {
			t.Fatalf("tick %d: Growing flipped back", i+1)
		}
		prev = target.Radius
	}
	if !shrinking {
		t.Error("target never started shrinking")
	}
}

func TestTarget_Collide(t *testing.T) {
	target := &Target{X: 100, Y: 100, Radius: 5}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 100, 100, true},
		{"on boundary", 103, 104, true},
		{"just outside", 103, 104.001, false},
		{"far away", 300, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := target.Collide(tt.x, tt.y); got != tt.want {
				t.Errorf("Collide(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTarget_CollideNegativeRadius(t *testing.T) {
	target := &Target{X: 100, Y: 100, Radius: -0.0001}
	if target.Collide(100, 100) {
		t.Error("a vanished target should not collide")
	}
}

func TestTarget_DrawBullseye(t *testing.T) {
	// 800x600 onto 80x30 cells: one sub-pixel is 10x10 logical units.
	canvas := draw.NewScaledCanvas(80, 30, 800, 600)
	canvas.Fill(draw.Black)
	ctx := DrawContext{Canvas: canvas, Writer: draw.NewChunkWriter(&bytes.Buffer{}, 0, 0)}

	target := &Target{X: 400, Y: 300, Radius: 30}
	if err := target.Draw(ctx); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	tests := []struct {
		name string
		x, y float64 // sub-pixel centers at distance ~7, ~15.8, ~21.2, ~25.5, ~45
		want draw.Color
	}{
		{"inner ring", 400, 300, TargetSecondColor},
		{"third ring", 410, 300, TargetColor},
		{"second ring", 380, 280, TargetSecondColor},
		{"outer ring", 420, 300, TargetColor},
		{"outside", 440, 300, draw.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canvas.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLabel_DrawCentered(t *testing.T) {
	var out bytes.Buffer
	canvas := draw.NewScaledCanvas(80, 30, 800, 600)
	cw := draw.NewChunkWriter(&out, 0, 0)
	ctx := DrawContext{Canvas: canvas, Writer: cw}

	// 10 columns wide = 100 logical units, centered on x=400 -> starts at x=350 (col 36).
	label := Label{X: 400, Y: 100, Value: "0123456789", Style: draw.TextStyle(draw.White, draw.Black), Centered: true}
	if err := label.Draw(ctx); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if !bytes.HasPrefix(out.Bytes(), []byte("\033[6;36H")) {
		t.Errorf("label output = %q, want cursor at row 6 col 36", out.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("0123456789")) {
		t.Errorf("label output = %q, missing text", out.String())
	}
}
