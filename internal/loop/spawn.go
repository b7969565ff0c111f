package loop

import "time"

// SpawnTimer is a recurring timer polled once per frame.
type SpawnTimer struct {
	interval time.Duration
	next     time.Time
}

// NewSpawnTimer arms a timer whose first firing is one interval after start.
func NewSpawnTimer(start time.Time, interval time.Duration) *SpawnTimer {
	return &SpawnTimer{interval: interval, next: start.Add(interval)}
}

// Fired returns how many periods ended at or before now since the last call.
// A stalled frame gets every missed firing at once.
func (t *SpawnTimer) Fired(now time.Time) int {
	n := 0
	for !now.Before(t.next) {
		n++
		t.next = t.next.Add(t.interval)
	}
	return n
}
