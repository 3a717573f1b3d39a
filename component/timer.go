package component

import "time"

// UfoSpawnTimerComponent drives periodic UFO spawns on the fixed step
type UfoSpawnTimerComponent struct {
	Duration  time.Duration
	Elapsed   time.Duration
	Repeating bool
}

// Advance adds dt and reports whether the timer expired during this call
// A repeating timer keeps the overshoot; a one-shot timer stays expired
func (t *UfoSpawnTimerComponent) Advance(dt time.Duration) bool {
	if t.Duration <= 0 {
		return false
	}
	if !t.Repeating && t.Elapsed >= t.Duration {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return false
	}
	if t.Repeating {
		t.Elapsed %= t.Duration
	}
	return true
}
