package input

// Scripted replays a fixed per-frame trace; polls past the end return empty snapshots
type Scripted struct {
	frames []Snapshot
	next   int
	idle   bool // Polled past the end, so every key reads as released
}

// NewScripted builds a provider from per-frame held sets
// Pressed is derived as keys held this frame but not the previous one
func NewScripted(held ...KeySet) *Scripted {
	frames := make([]Snapshot, len(held))
	var prev KeySet
	for i, h := range held {
		frames[i] = Snapshot{Held: h, Pressed: h &^ prev}
		prev = h
	}
	return &Scripted{frames: frames}
}

// Append adds frames holding keys for n polls, continuing press detection from the trace tail
func (s *Scripted) Append(keys KeySet, n int) *Scripted {
	var prev KeySet
	if len(s.frames) > 0 && !s.idle {
		prev = s.frames[len(s.frames)-1].Held
	}
	for i := 0; i < n; i++ {
		s.frames = append(s.frames, Snapshot{Held: keys, Pressed: keys &^ prev})
		prev = keys
	}
	return s
}

// Poll returns the next frame of the trace
func (s *Scripted) Poll() Snapshot {
	if s.next >= len(s.frames) {
		s.idle = true
		return Snapshot{}
	}
	s.idle = false
	snap := s.frames[s.next]
	s.next++
	return snap
}

// Remaining returns frames not yet polled
func (s *Scripted) Remaining() int {
	if s.next >= len(s.frames) {
		return 0
	}
	return len(s.frames) - s.next
}
