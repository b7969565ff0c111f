package loop

import (
	"fmt"
	"time"
)

// FormatTime renders a duration as mm:ss.d, truncated to tenths.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int64(d / (100 * time.Millisecond))
	minutes := tenths / 600
	seconds := tenths / 10 % 60
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths%10)
}

func timeText(s Stats) string {
	return "Time: " + FormatTime(s.Elapsed)
}

func speedText(s Stats) string {
	return fmt.Sprintf("Speed: %.1f t/s", s.HitRate())
}

func hitsText(s Stats) string {
	return fmt.Sprintf("Hits: %d", s.Hits)
}

func livesText(s Stats) string {
	return fmt.Sprintf("Lives: %d", s.Lives())
}

func accuracyText(s Stats) string {
	pct, ok := s.Accuracy()
	if !ok {
		return "Accuracy: N/A"
	}
	return fmt.Sprintf("Accuracy: %.1f%%", pct)
}
