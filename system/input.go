package system

import (
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/parameter"
)

// InputSystem polls the input provider once per frame and translates keys into controller events
// Runs in every state so menus see the same snapshot
type InputSystem struct {
	engine.SystemBase
}

// NewInputSystem creates the input translator
func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{SystemBase: engine.NewSystemBase(world)}
}

// Name returns system's name
func (s *InputSystem) Name() string {
	return "player_input"
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

// Update samples the provider and emits Left/Right while held and Fired on the Space edge
func (s *InputSystem) Update() {
	in := s.Resource.Input
	if in.Provider == nil {
		in.Snapshot = input.Snapshot{}
		return
	}

	snap := in.Provider.Poll()
	in.Snapshot = snap

	bus := s.World.Events
	if snap.Held.Has(input.KeyLeft) {
		bus.Emit(event.EventController, &event.ControllerPayload{Direction: event.DirectionLeft})
	}
	if snap.Held.Has(input.KeyRight) {
		bus.Emit(event.EventController, &event.ControllerPayload{Direction: event.DirectionRight})
	}
	if snap.Pressed.Has(input.KeyFire) {
		bus.Emit(event.EventFired, nil)
	}
}
