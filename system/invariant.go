package system

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/status"
	"github.com/lixenwraith/invaders/vmath"
)

// InvariantSystem audits the world after every frame
// Strict mode panics with an ErrInvariant error; otherwise it repairs the world and logs a warning
type InvariantSystem struct {
	engine.SystemBase

	strict  bool
	repairs *atomic.Int64
}

// NewInvariantSystem creates the invariant guard
func NewInvariantSystem(world *engine.World, strict bool) engine.System {
	return &InvariantSystem{
		SystemBase: engine.NewSystemBase(world),
		strict:     strict,
		repairs:    world.Resources.Status.Ints.Get(status.MetricInvariantFix),
	}
}

func (s *InvariantSystem) Name() string  { return "invariants" }
func (s *InvariantSystem) Priority() int { return parameter.PriorityInvariant }

func (s *InvariantSystem) Update() {
	violations := CheckInvariants(s.World)
	if len(violations) == 0 {
		return
	}
	err := errors.Join(violations...)
	if s.strict {
		panic(err)
	}

	repaired := RepairInvariants(s.World)
	s.repairs.Add(int64(repaired))
	s.Resource.Logger.Warn("world invariant repaired",
		zap.Error(err),
		zap.Int("repairs", repaired),
		zap.Int64("frame", s.Resource.Time.FrameNumber),
	)
}

// CheckInvariants returns one ErrInvariant-wrapped error per breach
func CheckInvariants(w *engine.World) []error {
	c := &w.Components
	var errs []error

	if n := c.Laser.Count(); n > 1 {
		errs = append(errs, fmt.Errorf("%w: %d laser beams", ErrInvariant, n))
	}
	if n := c.Ufo.Count(); n > 1 {
		errs = append(errs, fmt.Errorf("%w: %d ufos", ErrInvariant, n))
	}

	seen := make(map[component.EnemyPositionComponent]core.Entity)
	for _, e := range w.Query().With(c.EnemyPosition).Execute() {
		p, _ := c.EnemyPosition.Get(e)
		if !p.InRange() {
			errs = append(errs, fmt.Errorf("%w: entity %d at cell (%d,%d) out of range", ErrInvariant, e, p.Col, p.Row))
			continue
		}
		if other, dup := seen[p]; dup {
			errs = append(errs, fmt.Errorf("%w: entities %d and %d share cell (%d,%d)", ErrInvariant, other, e, p.Col, p.Row))
			continue
		}
		seen[p] = e
	}

	for _, e := range c.Hitable.All() {
		if !c.Transform.Has(e) || !c.Size.Has(e) {
			errs = append(errs, fmt.Errorf("%w: hitable entity %d without transform or size", ErrInvariant, e))
		}
	}

	if lives := w.Resources.Player.Lives; lives < 0 || lives > parameter.MaxLives {
		errs = append(errs, fmt.Errorf("%w: lives %d outside [0,%d]", ErrInvariant, lives, parameter.MaxLives))
	}

	return errs
}

// RepairInvariants keeps the lowest-id entity of each singleton and cell, clamps out-of-range values
// Returns the number of repairs applied
func RepairInvariants(w *engine.World) int {
	c := &w.Components
	repairs := 0

	for _, store := range []engine.QueryableStore{c.Laser, c.Ufo} {
		extras := w.Query().With(store).Execute()
		if len(extras) > 1 {
			w.DestroyBatch(extras[1:])
			repairs += len(extras) - 1
		}
	}

	seen := make(map[component.EnemyPositionComponent]struct{})
	for _, e := range w.Query().With(c.EnemyPosition).Execute() {
		p, _ := c.EnemyPosition.Get(e)
		if !p.InRange() {
			p.Col = vmath.ClampInt(p.Col, 0, parameter.FormationCols-1)
			p.Row = vmath.ClampInt(p.Row, 0, parameter.FormationRows-1)
			c.EnemyPosition.Set(e, p)
			repairs++
		}
		if _, dup := seen[p]; dup {
			w.DestroyEntity(e)
			repairs++
			continue
		}
		seen[p] = struct{}{}
	}

	for _, e := range c.Hitable.All() {
		if !c.Transform.Has(e) || !c.Size.Has(e) {
			w.DestroyEntity(e)
			repairs++
		}
	}

	player := w.Resources.Player
	if clamped := vmath.ClampInt(player.Lives, 0, parameter.MaxLives); clamped != player.Lives {
		player.Lives = clamped
		repairs++
	}

	return repairs
}
