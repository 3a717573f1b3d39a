package system

import (
	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
)

// FireLaserSystem spawns the single laser beam on Fired
type FireLaserSystem struct {
	engine.SystemBase
	playingGate
}

// NewFireLaserSystem creates the laser spawner
func NewFireLaserSystem(world *engine.World) engine.System {
	return &FireLaserSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *FireLaserSystem) Name() string  { return "fire_laser" }
func (s *FireLaserSystem) Priority() int { return parameter.PriorityFireLaser }

// Update consumes at most one Fired event per frame
func (s *FireLaserSystem) Update() {
	if s.World.Events.Count(event.EventFired) == 0 {
		return
	}
	if s.Component.Laser.Count() > 0 {
		return
	}
	cannon, _, ok := engine.Single(s.Component.Cannon)
	if !ok {
		return
	}
	pos, ok := s.Component.Transform.Get(cannon)
	if !ok {
		return
	}

	c := s.Component
	eb := s.World.Commands.Spawn()
	engine.With(eb, c.Laser, component.LaserBeamComponent{})
	engine.With(eb, c.Transform, component.TransformComponent{X: pos.X, Y: pos.Y + parameter.HalfSprite})
	engine.With(eb, c.Size, component.SizeComponent{W: parameter.LaserWidth, H: parameter.LaserHeight})
	engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneGame})
	eb.Build()

	requestSound(s.World, core.SoundShoot)
}

// LaserMotionSystem flies the laser upward and removes it at the top wall
type LaserMotionSystem struct {
	engine.SystemBase
	playingGate
}

// NewLaserMotionSystem creates the laser mover
func NewLaserMotionSystem(world *engine.World) engine.System {
	return &LaserMotionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *LaserMotionSystem) Name() string  { return "move_laser" }
func (s *LaserMotionSystem) Priority() int { return parameter.PriorityLaserMotion }

func (s *LaserMotionSystem) Update() {
	speed := s.Resource.Tuning.LaserSpeed
	for _, e := range s.World.Query().With(s.Component.Laser).With(s.Component.Transform).Execute() {
		var y float64
		s.Component.Transform.Update(e, func(t *component.TransformComponent) {
			t.Y += speed
			y = t.Y
		})
		if y >= parameter.TopWall {
			s.World.Commands.Despawn(e)
		}
	}
}
