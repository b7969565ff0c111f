package loop

import (
	"errors"
	"time"

	"github.com/tomz197/aimtrainer/internal/draw"
	"github.com/tomz197/aimtrainer/internal/loop/config"
	"github.com/tomz197/aimtrainer/internal/object"
)

// ErrQuit is returned by Tick when the player asked to leave.
var ErrQuit = errors.New("quit requested")

// Events is everything that happened since the previous tick.
type Events struct {
	Now     time.Time
	Quit    bool
	Spawns  int        // Spawn timer firings
	Clicks  int        // Mouse presses
	Pointer draw.Point // Pointer position in logical coordinates
}

// Tick advances a running session by one frame. Ticks on an ended session do nothing
// except honour Quit.
func (s *Session) Tick(ev Events) error {
	if ev.Quit {
		return ErrQuit
	}
	if s.State != GameStateRunning {
		return nil
	}

	s.Stats.Elapsed = ev.Now.Sub(s.Start)

	for i := 0; i < ev.Spawns; i++ {
		s.SpawnTarget()
	}

	click := ev.Clicks > 0
	s.Stats.Clicks += ev.Clicks

	s.updateTargets(click, ev.Pointer)

	if s.Stats.Misses >= config.Lives {
		s.State = GameStateEnded
	}
	return nil
}

// updateTargets steps every target once and removes the ones that vanished or were hit.
// A target that vanishes on the tick it is clicked counts as a miss only.
func (s *Session) updateTargets(click bool, pointer draw.Point) {
	kept := s.Targets[:0] // reuse backing array
	for _, t := range s.Targets {
		t.Update()

		switch {
		case t.Radius <= 0:
			s.Stats.Misses++
		case click && t.Collide(pointer.X, pointer.Y):
			s.Stats.Hits++
		default:
			kept = append(kept, t)
		}
	}

	clear(s.Targets[len(kept):])
	s.Targets = kept
}

// SpawnTarget adds a target at a uniformly random integer position inside the
// padded play area below the status bar.
func (s *Session) SpawnTarget() *object.Target {
	minX, maxX := config.TargetPadding, config.Width-config.TargetPadding
	minY, maxY := config.TargetPadding+config.TopBarHeight, config.Height-config.TargetPadding

	x := minX + s.rng.Intn(maxX-minX+1)
	y := minY + s.rng.Intn(maxY-minY+1)

	t := object.NewTarget(float64(x), float64(y))
	s.AddTarget(t)
	return t
}
