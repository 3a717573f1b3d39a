package system

import (
	"errors"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/vmath"
)

// ErrInvariant is the sentinel wrapped by every world invariant breach
var ErrInvariant = errors.New("world invariant violated")

// playingGate is embedded by systems that only run while Playing
type playingGate struct{}

func (playingGate) States() []core.GameState { return engine.PlayingOnly }

// boxOf returns the collision box of an entity carrying Transform and Size
func boxOf(c *engine.ComponentStore, e core.Entity) (vmath.AABB, bool) {
	t, ok := c.Transform.Get(e)
	if !ok {
		return vmath.AABB{}, false
	}
	s, ok := c.Size.Get(e)
	if !ok {
		return vmath.AABB{}, false
	}
	return component.Box(t, s), true
}

// requestSound queues a cue for the boundary audio handler
func requestSound(w *engine.World, sound core.SoundType) {
	w.Events.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: sound})
}
