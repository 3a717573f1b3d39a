package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
)

// LaserHitSystem resolves the laser against hitable targets in entity-id order
// The first overlap consumes both the laser and the target
type LaserHitSystem struct {
	engine.SystemBase
	playingGate
}

// NewLaserHitSystem creates the laser collision resolver
func NewLaserHitSystem(world *engine.World) engine.System {
	return &LaserHitSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *LaserHitSystem) Name() string  { return "detect_laser_hit" }
func (s *LaserHitSystem) Priority() int { return parameter.PriorityLaserHit }

func (s *LaserHitSystem) Update() {
	c := s.Component
	laser, _, ok := engine.Single(c.Laser)
	if !ok || s.World.Commands.Pending(laser) {
		return
	}
	laserBox, ok := boxOf(c, laser)
	if !ok {
		return
	}

	for _, target := range s.World.Query().With(c.Hitable).With(c.Transform).With(c.Size).Execute() {
		box, _ := boxOf(c, target)
		if !laserBox.Intersects(box) {
			continue
		}

		points := 0
		enemy, isEnemy := c.Enemy.Get(target)
		if hp, ok := c.Hitpoints.Get(target); ok {
			points = hp.Value
		} else if isEnemy {
			points = enemy.Points
		}

		player := s.Resource.Player
		player.Score += points
		if isEnemy {
			s.Resource.Difficulty.Kills++
		}

		s.World.Events.Emit(event.EventHit, &event.HitPayload{Target: target, Points: points, Enemy: isEnemy})
		s.World.Commands.Despawn(laser)
		s.World.Commands.Despawn(target)

		s.Resource.Logger.Debug("laser hit",
			zap.Uint64("target", uint64(target)),
			zap.Int("points", points),
			zap.Int("score", player.Score),
		)
		return
	}
}

// BombHitSystem resolves bombs against the cannon
type BombHitSystem struct {
	engine.SystemBase
	playingGate
}

// NewBombHitSystem creates the bomb collision resolver
func NewBombHitSystem(world *engine.World) engine.System {
	return &BombHitSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *BombHitSystem) Name() string  { return "detect_bomb_hit" }
func (s *BombHitSystem) Priority() int { return parameter.PriorityBombHit }

func (s *BombHitSystem) Update() {
	c := s.Component
	cannon, _, ok := engine.Single(c.Cannon)
	if !ok {
		return
	}
	cannonBox, ok := boxOf(c, cannon)
	if !ok {
		return
	}

	player := s.Resource.Player
	for _, bomb := range s.World.Query().With(c.Bomb).With(c.Transform).With(c.Size).Execute() {
		if s.World.Commands.Pending(bomb) {
			continue
		}
		box, _ := boxOf(c, bomb)
		if !cannonBox.Intersects(box) {
			continue
		}

		s.World.Commands.Despawn(bomb)
		player.Lives = max(player.Lives-1, 0)
		s.World.Events.Emit(event.EventPlayerHit, &event.PlayerHitPayload{Lives: player.Lives})

		s.Resource.Logger.Info("player hit", zap.Int("lives", player.Lives))
	}
}
