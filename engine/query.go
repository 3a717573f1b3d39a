package engine

import (
	"slices"

	"github.com/lixenwraith/invaders/core"
)

// QueryBuilder finds entities present in every given store
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	entities := world.Query().
//	    With(c.Transform).
//	    With(c.Hitable).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]QueryableStore, 0, 4)}
}

// With adds a component store to the query filter
// Panics if called after Execute
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities in all stores, ordered by entity id
// The slice is owned by the caller; despawning while ranging over it is safe
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = []core.Entity{}
		return qb.results
	}

	// Smallest store first minimizes Has checks
	stores := slices.Clone(qb.stores)
	slices.SortStableFunc(stores, func(a, b QueryableStore) int {
		return a.Count() - b.Count()
	})

	candidates := stores[0].All()
	for _, store := range stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	slices.Sort(candidates)
	qb.results = candidates
	return qb.results
}

// Single returns the lowest-id entity holding T, or ok=false when none exists
func Single[T any](s *Store[T]) (core.Entity, T, bool) {
	var zero T
	entities := s.All()
	if len(entities) == 0 {
		return 0, zero, false
	}
	e := slices.Min(entities)
	val, ok := s.Get(e)
	if !ok {
		return 0, zero, false
	}
	return e, val, true
}
