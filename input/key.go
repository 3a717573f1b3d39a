package input

// Key is an abstract game key
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyConfirm
	KeyQuit
	KeyMute   // Frontend toggle, ignored by the simulation
	KeyStatus // Frontend toggle, ignored by the simulation
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyConfirm:
		return "confirm"
	case KeyQuit:
		return "quit"
	case KeyMute:
		return "mute"
	case KeyStatus:
		return "status"
	default:
		return "none"
	}
}

// KeySet is a bitmask of keys
type KeySet uint8

// Keys builds a set from a list of keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return k != KeyNone && s&(1<<k) != 0
}

// With returns the set with k added
func (s KeySet) With(k Key) KeySet {
	if k == KeyNone {
		return s
	}
	return s | 1<<k
}

// Without returns the set with k removed
func (s KeySet) Without(k Key) KeySet {
	return s &^ (1 << k)
}

// Snapshot is the input state sampled once per frame
// Held: keys currently down; Pressed: keys that went down since the previous poll
type Snapshot struct {
	Held    KeySet
	Pressed KeySet
}

// Provider is polled by the input system once per frame
type Provider interface {
	Poll() Snapshot
}
