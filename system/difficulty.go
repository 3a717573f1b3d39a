package system

import (
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/parameter"
)

// DifficultySystem derives Difficulty from the level and the kills scored in it
// The result never increases within a level and never drops below the floor
type DifficultySystem struct {
	engine.SystemBase
	playingGate
}

// NewDifficultySystem creates the difficulty progression
func NewDifficultySystem(world *engine.World) engine.System {
	return &DifficultySystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *DifficultySystem) Name() string  { return "increase_difficulty" }
func (s *DifficultySystem) Priority() int { return parameter.PriorityDifficulty }

func (s *DifficultySystem) Update() {
	d := s.Resource.Difficulty
	next := engine.DifficultyFor(s.Resource.Tuning, s.Resource.Level.Value, d.Kills)
	if next < d.Value {
		d.Value = next
	}
}
