package component

import "github.com/lixenwraith/invaders/core"

// SpriteComponent references a two-frame horizontal atlas
// The core never animates; renderers may toggle Frame on fixed ticks
type SpriteComponent struct {
	Asset string
	Frame uint8 // 0 or 1
}

// TextAnchor positions text relative to the screen
type TextAnchor uint8

const (
	AnchorTopLeft TextAnchor = iota
	AnchorBottomLeft
	AnchorCenter
)

// TextComponent is a text readout written by the core and drawn by the renderer
type TextComponent struct {
	Value  string
	Anchor TextAnchor
	Line   int // Vertical offset in text lines from the anchor
}

// ScoreUIComponent marks the score readout
type ScoreUIComponent struct{}

// LifesUIComponent marks the lives readout
type LifesUIComponent struct{}

// MenuButtonComponent is a selectable menu entry
// Command is the event name emitted when the button is activated
type MenuButtonComponent struct {
	Label   string
	Command string
}

// GameOverSignComponent marks the GAME OVER label
type GameOverSignComponent struct{}

// SceneComponent scopes an entity to a scene for batched teardown
type SceneComponent struct {
	Scene core.Scene
}
