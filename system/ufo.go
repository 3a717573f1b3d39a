package system

import (
	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/parameter"
)

// UfoSpawnSystem advances spawn timers by the fixed period and launches a UFO on expiry
type UfoSpawnSystem struct {
	engine.SystemBase
	playingGate
}

// NewUfoSpawnSystem creates the UFO timer driver
func NewUfoSpawnSystem(world *engine.World) engine.System {
	return &UfoSpawnSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *UfoSpawnSystem) Name() string  { return "ufo_timer" }
func (s *UfoSpawnSystem) Priority() int { return parameter.PriorityUfoSpawn }

func (s *UfoSpawnSystem) Update() {
	dt := s.Resource.Time.FixedPeriod
	for _, e := range s.Component.UfoTimer.All() {
		expired := false
		s.Component.UfoTimer.Update(e, func(t *component.UfoSpawnTimerComponent) {
			expired = t.Advance(dt)
		})
		if !expired || s.Component.Ufo.Count() > 0 {
			continue
		}
		SpawnUfo(s.World)
	}
}

// UfoMotionSystem flies the UFO across and removes it one sprite past the far wall
type UfoMotionSystem struct {
	engine.SystemBase
	playingGate
}

// NewUfoMotionSystem creates the UFO mover
func NewUfoMotionSystem(world *engine.World) engine.System {
	return &UfoMotionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *UfoMotionSystem) Name() string  { return "move_ufo" }
func (s *UfoMotionSystem) Priority() int { return parameter.PriorityUfoMotion }

func (s *UfoMotionSystem) Update() {
	speed := s.Resource.Tuning.UfoSpeed
	c := s.Component
	for _, e := range s.World.Query().With(c.Ufo).With(c.Transform).Execute() {
		ufo, _ := c.Ufo.Get(e)
		var x float64
		c.Transform.Update(e, func(t *component.TransformComponent) {
			t.X += speed * ufo.Direction
			x = t.X
		})
		if (ufo.Direction > 0 && x > parameter.RightWall+parameter.SpriteSize) ||
			(ufo.Direction < 0 && x < parameter.LeftWall-parameter.SpriteSize) {
			s.World.Commands.Despawn(e)
		}
	}
}
