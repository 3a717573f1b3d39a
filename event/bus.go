package event

// Bus holds the events of one step
// Systems emit and read during the step; the scheduler dispatches and clears it at the boundary
// Single goroutine; not safe for concurrent use
type Bus struct {
	events []GameEvent
	frame  int64
}

// NewBus creates an empty bus with preallocated capacity
func NewBus(capacity int) *Bus {
	return &Bus{events: make([]GameEvent, 0, capacity)}
}

// SetFrame stamps subsequently emitted events with the frame index
func (b *Bus) SetFrame(frame int64) {
	b.frame = frame
}

// Emit appends an event
func (b *Bus) Emit(et EventType, payload any) {
	b.events = append(b.events, GameEvent{Type: et, Payload: payload, Frame: b.frame})
}

// Read returns events of the given type in emission order
// The returned slice is a copy; emitting while ranging over it is safe
func (b *Bus) Read(et EventType) []GameEvent {
	var out []GameEvent
	for _, ev := range b.events {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

// Count returns the number of pending events of the given type
func (b *Bus) Count(et EventType) int {
	n := 0
	for _, ev := range b.events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

// Events returns a copy of all pending events in emission order
func (b *Bus) Events() []GameEvent {
	out := make([]GameEvent, len(b.events))
	copy(out, b.events)
	return out
}

// Drain returns all pending events and clears the bus
func (b *Bus) Drain() []GameEvent {
	out := b.Events()
	b.Clear()
	return out
}

// Clear drops all pending events, keeping capacity
func (b *Bus) Clear() {
	clear(b.events)
	b.events = b.events[:0]
}

// Len returns the pending event count
func (b *Bus) Len() int {
	return len(b.events)
}
