// Package loop provides the game loop and session state.
package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/aimtrainer/internal/loop/config"
	"github.com/tomz197/aimtrainer/internal/object"
)

// GameState represents the current session phase.
type GameState int

const (
	GameStateRunning GameState = iota // Targets spawn and can be clicked
	GameStateEnded                    // Lives exhausted, summary shown
)

// Stats are the session counters shown in the status bar and on the summary.
type Stats struct {
	Elapsed time.Duration // Since session start, frozen once ended
	Hits    int
	Clicks  int // Total mouse presses, hit or not
	Misses  int // Targets that vanished unclicked
}

// Lives returns the misses left before the session ends.
func (s Stats) Lives() int {
	if s.Misses >= config.Lives {
		return 0
	}
	return config.Lives - s.Misses
}

// HitRate returns hits per second. Zero until time has passed.
func (s Stats) HitRate() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.Hits) / secs
}

// Accuracy returns hits per click as a percentage.
// ok is false when nothing was clicked.
func (s Stats) Accuracy() (pct float64, ok bool) {
	if s.Clicks == 0 {
		return 0, false
	}
	return float64(s.Hits) / float64(s.Clicks) * 100, true
}

// Session holds everything one run of the game mutates.
// It is owned by a single loop goroutine.
type Session struct {
	State   GameState
	Targets []*object.Target
	Stats   Stats
	Start   time.Time
	rng     *rand.Rand
}

// NewSession creates a running session with no targets.
func NewSession(start time.Time, rng *rand.Rand) *Session {
	return &Session{
		State:   GameStateRunning,
		Targets: []*object.Target{},
		Start:   start,
		rng:     rng,
	}
}

// AddTarget adds a target to the live set.
func (s *Session) AddTarget(t *object.Target) {
	s.Targets = append(s.Targets, t)
}
