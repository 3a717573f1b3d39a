package engine

import (
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine/fsm"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/status"
)

// Scheduler runs one frame step per Step call
// Each step: fixed ticks drained from the accumulator, frame systems, then the boundary
// where events are dispatched, the FSM transitions, and the bus is cleared
type Scheduler struct {
	world *World
	res   *Resources

	frame []System
	fixed []System

	router *event.Router[*World]
	fsm    *fsm.Machine[*World]

	accumulator time.Duration

	statFrames  *atomic.Int64
	statTicks   *atomic.Int64
	statPeriod  *atomic.Int64
	statEntity  *atomic.Int64
	statDropped *atomic.Int64
}

// NewScheduler creates a scheduler bound to the world
func NewScheduler(w *World) *Scheduler {
	reg := w.Resources.Status
	return &Scheduler{
		world:       w,
		res:         w.Resources,
		router:      event.NewRouter[*World](),
		fsm:         fsm.NewMachine[*World](),
		statFrames:  reg.Ints.Get(status.MetricFrames),
		statTicks:   reg.Ints.Get(status.MetricFixedTicks),
		statPeriod:  reg.Ints.Get(status.MetricFixedPeriod),
		statEntity:  reg.Ints.Get(status.MetricEntities),
		statDropped: reg.Ints.Get(status.MetricDroppedSteps),
	}
}

// AddFrameSystem registers a system run once per frame
func (s *Scheduler) AddFrameSystem(sys System) {
	s.frame = insertByPriority(s.frame, sys)
}

// AddFixedSystem registers a system run once per fixed tick
func (s *Scheduler) AddFixedSystem(sys System) {
	s.fixed = insertByPriority(s.fixed, sys)
}

// insertByPriority keeps registration order among equal priorities
func insertByPriority(list []System, sys System) []System {
	i := len(list)
	for i > 0 && list[i-1].Priority() > sys.Priority() {
		i--
	}
	return slices.Insert(list, i, sys)
}

// FrameSystems returns frame system names in execution order
func (s *Scheduler) FrameSystems() []string {
	return systemNames(s.frame)
}

// FixedSystems returns fixed system names in execution order
func (s *Scheduler) FixedSystems() []string {
	return systemNames(s.fixed)
}

func systemNames(list []System) []string {
	names := make([]string, len(list))
	for i, sys := range list {
		names[i] = sys.Name()
	}
	return names
}

// RegisterEventHandler adds a boundary event handler
func (s *Scheduler) RegisterEventHandler(h event.Handler[*World]) {
	s.router.Register(h)
}

// LoadFSM registers actions and guards, loads the graph and enters the initial state
func (s *Scheduler) LoadFSM(graph []byte, register func(*fsm.Machine[*World])) error {
	register(s.fsm)

	if err := s.fsm.LoadConfig(graph); err != nil {
		return fmt.Errorf("failed to load FSM config: %w", err)
	}
	if err := s.fsm.Init(s.world); err != nil {
		return fmt.Errorf("failed to init FSM: %w", err)
	}
	s.world.Commands.Flush()
	s.mirrorState()
	return nil
}

// Machine exposes the state machine for inspection
func (s *Scheduler) Machine() *fsm.Machine[*World] {
	return s.fsm
}

// Accumulator returns time carried toward the next fixed tick
func (s *Scheduler) Accumulator() time.Duration {
	return s.accumulator
}

// ResetAccumulator drops carried time
func (s *Scheduler) ResetAccumulator() {
	s.accumulator = 0
}

// Step advances the simulation by one frame of duration dt
func (s *Scheduler) Step(dt time.Duration) {
	dt = min(max(dt, 0), parameter.MaxFrameDelta)

	t := s.res.Time
	t.FrameNumber++
	t.Delta = dt
	t.Elapsed += dt
	s.world.Events.SetFrame(t.FrameNumber)

	s.accumulator += dt
	s.runFixed()

	s.run(s.frame)
	s.boundary(dt)

	s.statFrames.Store(t.FrameNumber)
	s.statEntity.Store(int64(s.world.EntityCount()))
}

// runFixed drains the accumulator; the period is re-read every tick since fixed systems change difficulty
func (s *Scheduler) runFixed() {
	maxSteps := s.res.Tuning.MaxFixedStepsPerFrame
	if maxSteps <= 0 {
		maxSteps = parameter.MaxFixedStepsPerFrame
	}

	for steps := 0; ; steps++ {
		period := s.res.FixedPeriod()
		if period <= 0 || s.accumulator < period {
			return
		}
		if steps >= maxSteps {
			dropped := int64(s.accumulator / period)
			s.accumulator %= period
			s.statDropped.Add(dropped)
			s.res.Logger.Debug("fixed step catch-up exhausted",
				zap.Int64("dropped", dropped),
				zap.Duration("period", period),
			)
			return
		}

		s.res.Time.FixedPeriod = period
		s.run(s.fixed)
		s.accumulator -= period
		s.res.Time.FixedTicks++

		s.statTicks.Store(s.res.Time.FixedTicks)
		s.statPeriod.Store(period.Milliseconds())
	}
}

// RunFixedTick runs one fixed tick regardless of the accumulator
func (s *Scheduler) RunFixedTick() {
	s.res.Time.FixedPeriod = s.res.FixedPeriod()
	s.run(s.fixed)
	s.res.Time.FixedTicks++
}

func (s *Scheduler) run(list []System) {
	state := s.res.State.State
	for _, sys := range list {
		if gated, ok := sys.(StateGated); ok && !slices.Contains(gated.States(), state) {
			continue
		}
		sys.Update()
		s.world.Commands.Flush()
	}
}

// boundary dispatches events, runs at most one FSM transition and clears the bus
func (s *Scheduler) boundary(dt time.Duration) {
	events := s.world.Events.Events()
	s.router.Dispatch(s.world, events)

	transitioned := false
	for _, ev := range events {
		if s.fsm.HandleEvent(s.world, ev.Type) {
			transitioned = true
			break
		}
	}
	if !transitioned {
		s.fsm.Update(s.world, dt)
	}

	s.world.Commands.Flush()
	s.mirrorState()
	s.world.Events.Clear()
}

// mirrorState copies the FSM leaf into the GameState resource
// Entering Playing restarts the fixed-step accumulator
func (s *Scheduler) mirrorState() {
	next, ok := core.ParseGameState(s.fsm.Current())
	if !ok {
		return
	}
	prev := s.res.State.State
	if next == prev {
		return
	}
	s.res.State.State = next
	if next == core.StatePlaying {
		s.accumulator = 0
	}
	s.res.Logger.Info("state transition",
		zap.Stringer("from", prev),
		zap.Stringer("to", next),
		zap.Int("level", s.res.Level.Value),
	)
}
