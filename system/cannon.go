package system

import (
	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/vmath"
)

// CannonSystem integrates controller events into the cannon position
type CannonSystem struct {
	engine.SystemBase
	playingGate
}

// NewCannonSystem creates the cannon controller
func NewCannonSystem(world *engine.World) engine.System {
	return &CannonSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *CannonSystem) Name() string  { return "move_cannon" }
func (s *CannonSystem) Priority() int { return parameter.PriorityCannon }

// Update moves the cannon by (#right - #left) * speed and clamps it inside the walls
func (s *CannonSystem) Update() {
	cannon, _, ok := engine.Single(s.Component.Cannon)
	if !ok {
		return
	}

	sum := 0
	for _, ev := range s.World.Events.Read(event.EventController) {
		if p, ok := ev.Payload.(*event.ControllerPayload); ok {
			sum += int(p.Direction)
		}
	}
	if sum == 0 {
		return
	}

	speed := s.Resource.Tuning.CannonSpeed
	s.Component.Transform.Update(cannon, func(t *component.TransformComponent) {
		t.X = vmath.Clamp(t.X+float64(sum)*speed, parameter.CannonMinX, parameter.CannonMaxX)
		t.Y = parameter.CannonY
	})
}
