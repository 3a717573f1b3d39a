package engine

import "github.com/lixenwraith/invaders/core"

// System is a unit of simulation logic run once per frame or per fixed tick
type System interface {
	Name() string
	// Priority orders systems within a stage; lower runs first
	Priority() int
	Update()
}

// StateGated systems run only while the game is in one of the listed states
// Systems without it run in every state
type StateGated interface {
	States() []core.GameState
}

// SystemBase provides common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resources
	Component *ComponentStore
}

// NewSystemBase initializes base dependencies from world
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: &w.Components,
	}
}

// PlayingOnly is the gate shared by gameplay systems
var PlayingOnly = []core.GameState{core.StatePlaying}
