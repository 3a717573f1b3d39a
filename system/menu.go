package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/parameter"
)

// MenuSystem activates the menu button on Confirm or Fire press
type MenuSystem struct {
	engine.SystemBase
}

// NewMenuSystem creates the menu controller
func NewMenuSystem(world *engine.World) engine.System {
	return &MenuSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *MenuSystem) Name() string  { return "menu" }
func (s *MenuSystem) Priority() int { return parameter.PriorityMenu }

// States returns the states showing the menu
func (s *MenuSystem) States() []core.GameState {
	return []core.GameState{core.StateMenu, core.StateGameOver}
}

func (s *MenuSystem) Update() {
	pressed := s.Resource.Input.Snapshot.Pressed
	if !pressed.Has(input.KeyConfirm) && !pressed.Has(input.KeyFire) {
		return
	}
	_, btn, ok := engine.Single(s.Component.MenuButton)
	if !ok {
		return
	}
	et, ok := event.GetEventType(btn.Command)
	if !ok {
		s.Resource.Logger.Warn("menu button has unknown command", zap.String("label", btn.Label), zap.String("command", btn.Command))
		return
	}
	s.World.Events.Emit(et, nil)
}
