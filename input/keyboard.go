package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keyboard turns tcell key events into per-frame snapshots
// Terminals report no key release, so a key stays held for the hold window after its last press or auto-repeat
// Feed is called from the event pump goroutine, Poll from the game loop
type Keyboard struct {
	mu       sync.Mutex
	table    *KeyTable
	window   time.Duration
	now      func() time.Time
	lastSeen [keyCount]time.Time
	pressed  KeySet
}

// NewKeyboard creates a keyboard with the given hold window and clock
// A nil clock uses time.Now
func NewKeyboard(table *KeyTable, window time.Duration, now func() time.Time) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	if now == nil {
		now = time.Now
	}
	return &Keyboard{table: table, window: window, now: now}
}

// Feed records a terminal key event and returns the resolved game key
func (kb *Keyboard) Feed(ev *tcell.EventKey) Key {
	k := kb.table.Resolve(ev)
	if k == KeyNone {
		return k
	}

	kb.mu.Lock()
	defer kb.mu.Unlock()

	t := kb.now()
	// Auto-repeat of a held key is not a new press
	if !kb.heldAt(k, t) {
		kb.pressed = kb.pressed.With(k)
	}
	kb.lastSeen[k] = t
	return k
}

// Poll returns keys held at this instant and those pressed since the last poll
func (kb *Keyboard) Poll() Snapshot {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	t := kb.now()
	var held KeySet
	for k := KeyLeft; k < keyCount; k++ {
		if kb.heldAt(k, t) {
			held = held.With(k)
		}
	}

	snap := Snapshot{Held: held | kb.pressed, Pressed: kb.pressed}
	kb.pressed = 0
	return snap
}

func (kb *Keyboard) heldAt(k Key, t time.Time) bool {
	last := kb.lastSeen[k]
	return !last.IsZero() && t.Sub(last) < kb.window
}
