package system

import (
	"slices"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/parameter"
)

// BombDropSystem rolls a drop for every front-rank invader each fixed tick
type BombDropSystem struct {
	engine.SystemBase
	playingGate
}

// NewBombDropSystem creates the bomb dropper
func NewBombDropSystem(world *engine.World) engine.System {
	return &BombDropSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *BombDropSystem) Name() string  { return "drop_bomb" }
func (s *BombDropSystem) Priority() int { return parameter.PriorityBombDrop }

func (s *BombDropSystem) Update() {
	threshold := s.Resource.Tuning.BombDropThreshold
	for _, e := range FrontRank(s.World) {
		pos, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		if s.Resource.RNG.Float64()*100 > threshold {
			continue
		}
		SpawnBomb(s.World, pos.X, pos.Y)
	}
}

// FrontRank returns the lowest invader of every column, ordered by column
func FrontRank(w *engine.World) []core.Entity {
	c := &w.Components
	front := make(map[int]core.Entity)
	frontRow := make(map[int]int)
	for _, e := range w.Query().With(c.Enemy).With(c.EnemyPosition).Execute() {
		p, _ := c.EnemyPosition.Get(e)
		if row, seen := frontRow[p.Col]; !seen || p.Row > row {
			frontRow[p.Col] = p.Row
			front[p.Col] = e
		}
	}

	cols := make([]int, 0, len(front))
	for col := range front {
		cols = append(cols, col)
	}
	slices.Sort(cols)

	out := make([]core.Entity, len(cols))
	for i, col := range cols {
		out[i] = front[col]
	}
	return out
}

// BombMotionSystem drops bombs and removes them at the bottom wall
type BombMotionSystem struct {
	engine.SystemBase
	playingGate
}

// NewBombMotionSystem creates the bomb mover
func NewBombMotionSystem(world *engine.World) engine.System {
	return &BombMotionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *BombMotionSystem) Name() string  { return "move_bomb" }
func (s *BombMotionSystem) Priority() int { return parameter.PriorityBombMotion }

func (s *BombMotionSystem) Update() {
	speed := s.Resource.Tuning.BombSpeed
	for _, e := range s.World.Query().With(s.Component.Bomb).With(s.Component.Transform).Execute() {
		var y float64
		s.Component.Transform.Update(e, func(t *component.TransformComponent) {
			t.Y -= speed
			y = t.Y
		})
		if y <= parameter.BottomWall {
			s.World.Commands.Despawn(e)
		}
	}
}
