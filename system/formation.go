package system

import (
	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
)

// EnemyMotionSystem sweeps the formation on the fixed step
// A wall contact reverses direction in the same tick and descends on the next one
type EnemyMotionSystem struct {
	engine.SystemBase
	playingGate
}

// NewEnemyMotionSystem creates the formation sweeper
func NewEnemyMotionSystem(world *engine.World) engine.System {
	return &EnemyMotionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *EnemyMotionSystem) Name() string  { return "move_enemies" }
func (s *EnemyMotionSystem) Priority() int { return parameter.PriorityEnemyMotion }

func (s *EnemyMotionSystem) Update() {
	c := s.Component
	mv := s.Resource.Movement
	enemies := s.World.Query().With(c.Enemy).With(c.Transform).Execute()

	if mv.Advance {
		for _, e := range enemies {
			c.Transform.Update(e, func(t *component.TransformComponent) {
				t.Y -= parameter.SpriteSize
			})
		}
		mv.Advance = false
		return
	}

	dx := mv.Direction * mv.Speed
	contact := false
	for _, e := range enemies {
		c.Transform.Update(e, func(t *component.TransformComponent) {
			t.X += dx
			if t.X > parameter.SweepMaxX || t.X < parameter.SweepMinX {
				contact = true
			}
		})
	}

	if contact {
		mv.Advance = true
		mv.Direction = -mv.Direction
		mv.Speed += s.Resource.Tuning.EnemySpeedPerBounce
		s.World.Events.Emit(event.EventEnemyAdvancement, nil)
	}
}
