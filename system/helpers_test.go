package system

import (
	"testing"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
)

// newPlayingWorld returns a world already in Playing with default tuning
func newPlayingWorld(t *testing.T) *engine.World {
	t.Helper()
	res := engine.NewResources(config.Default().Tuning, engine.NewRand(1), nil)
	res.State.State = core.StatePlaying
	return engine.NewWorld(res)
}

// runSystems updates each system once and flushes after each, as the scheduler does
func runSystems(w *engine.World, systems ...engine.System) {
	for _, s := range systems {
		s.Update()
		w.Commands.Flush()
	}
}

// fixedRand returns the same roll and index every time
type fixedRand struct {
	roll  float64
	index int
	calls int
}

func (r *fixedRand) Float64() float64 {
	r.calls++
	return r.roll
}

func (r *fixedRand) IntN(n int) int {
	r.calls++
	return r.index % n
}

func position(t *testing.T, w *engine.World, e core.Entity) component.TransformComponent {
	t.Helper()
	p, ok := w.Components.Transform.Get(e)
	if !ok {
		t.Fatalf("entity %d has no transform", e)
	}
	return p
}

func moveTo(w *engine.World, e core.Entity, x, y float64) {
	w.Components.Transform.Update(e, func(t *component.TransformComponent) {
		t.X = x
		t.Y = y
	})
}

// shiftFormation translates every invader by dx
func shiftFormation(w *engine.World, dx float64) {
	for _, e := range w.Components.Enemy.All() {
		w.Components.Transform.Update(e, func(t *component.TransformComponent) { t.X += dx })
	}
}

func enemyXs(w *engine.World) map[core.Entity]float64 {
	out := make(map[core.Entity]float64)
	for _, e := range w.Components.Enemy.All() {
		p, _ := w.Components.Transform.Get(e)
		out[e] = p.X
	}
	return out
}
