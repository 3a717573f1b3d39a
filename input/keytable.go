package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to game keys
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Key

	// Rune bindings, matched case-insensitively for letters
	Runes map[rune]Key
}

// DefaultKeyTable returns arrows plus vi-style h/l and a/d bindings
// m toggles audio, F1 the status overlay
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyEnter:  KeyConfirm,
			tcell.KeyEscape: KeyQuit,
			tcell.KeyCtrlC:  KeyQuit,
			tcell.KeyCtrlQ:  KeyQuit,
			tcell.KeyF1:     KeyStatus,
		},
		Runes: map[rune]Key{
			' ': KeyFire,
			'h': KeyLeft,
			'a': KeyLeft,
			'l': KeyRight,
			'd': KeyRight,
			'q': KeyQuit,
			'm': KeyMute,
		},
	}
}

// Resolve maps a tcell key event to a game key
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if k, ok := kt.Runes[r]; ok {
			return k
		}
		if r >= 'A' && r <= 'Z' {
			return kt.Runes[r+('a'-'A')]
		}
		return KeyNone
	}
	return kt.SpecialKeys[ev.Key()]
}
