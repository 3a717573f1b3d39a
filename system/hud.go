package system

import (
	"fmt"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/parameter"
)

// hudGate keeps the readouts current through the frame that ends the session
type hudGate struct{}

func (hudGate) States() []core.GameState {
	return []core.GameState{core.StatePlaying, core.StateGameOver}
}

// ScoreUISystem writes the score readout every Playing frame
type ScoreUISystem struct {
	engine.SystemBase
	hudGate
}

// NewScoreUISystem creates the score HUD writer
func NewScoreUISystem(world *engine.World) engine.System {
	return &ScoreUISystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ScoreUISystem) Name() string  { return "score_ui" }
func (s *ScoreUISystem) Priority() int { return parameter.PriorityScoreUI }

func (s *ScoreUISystem) Update() {
	text := fmt.Sprintf("%s %d", parameter.LabelScore, s.Resource.Player.Score)
	for _, e := range s.World.Query().With(s.Component.ScoreUI).With(s.Component.Text).Execute() {
		s.Component.Text.Update(e, func(t *component.TextComponent) { t.Value = text })
	}
}

// LifesUISystem writes the lives readout every Playing frame
type LifesUISystem struct {
	engine.SystemBase
	hudGate
}

// NewLifesUISystem creates the lives HUD writer
func NewLifesUISystem(world *engine.World) engine.System {
	return &LifesUISystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *LifesUISystem) Name() string  { return "lifes_ui" }
func (s *LifesUISystem) Priority() int { return parameter.PriorityLifesUI }

func (s *LifesUISystem) Update() {
	text := fmt.Sprintf("%s %d", parameter.LabelLives, s.Resource.Player.Lives)
	for _, e := range s.World.Query().With(s.Component.LifesUI).With(s.Component.Text).Execute() {
		s.Component.Text.Update(e, func(t *component.TextComponent) { t.Value = text })
	}
}
