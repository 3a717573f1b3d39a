package engine

import (
	"slices"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
)

// World contains all entities, their components, resources and the step's event bus
// Single-goroutine: the game loop owns it; renderers read it between steps
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resources
	Events     *event.Bus
	Commands   *Commands

	stores []QueryableStore
}

// NewWorld creates an empty world around the given resources
func NewWorld(res *Resources) *World {
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    res,
		Events:       event.NewBus(parameter.EventBusCapacity),
	}
	w.stores = w.Components.all()
	w.Commands = newCommands(w)
	return w
}

// CreateEntity reserves a new entity ID
// IDs are monotonic, so id order is creation order
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.stores {
		s.Remove(e)
	}
}

// DestroyBatch removes all components of many entities
func (w *World) DestroyBatch(entities []core.Entity) {
	for _, s := range w.stores {
		s.RemoveBatch(entities)
	}
}

// Alive reports whether the entity holds any component
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.stores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Entities returns every live entity in id order
func (w *World) Entities() []core.Entity {
	seen := make(map[core.Entity]struct{})
	var out []core.Entity
	for _, s := range w.stores {
		for _, e := range s.All() {
			if _, ok := seen[e]; !ok {
				seen[e] = struct{}{}
				out = append(out, e)
			}
		}
	}
	slices.Sort(out)
	return out
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.Entities())
}

// Clear removes all entities and components; resources are untouched
func (w *World) Clear() {
	for _, s := range w.stores {
		s.Clear()
	}
	w.Commands.Reset()
	w.Events.Clear()
}
