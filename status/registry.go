package status

import (
	"fmt"
	"sync/atomic"
)

// Metric names written by the engine and read by the renderer overlay
const (
	MetricFrames       = "engine.frames"
	MetricFixedTicks   = "engine.fixed_ticks"
	MetricFixedPeriod  = "engine.fixed_period_ms"
	MetricEntities     = "world.entities"
	MetricInvariantFix = "world.invariant_repairs"
	MetricDroppedSteps = "engine.dropped_fixed_steps"
)

// Registry is the central metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Lines renders every metric as "name=value", ints first, each group sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, v.Load()))
	})
	return lines
}
