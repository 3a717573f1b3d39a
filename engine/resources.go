package engine

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/status"
)

// PlayerResource holds the player's standing for the session
type PlayerResource struct {
	Lives   int
	Score   int
	Session string // uuid, regenerated on every reset
}

// EnemyMovementResource is the shared formation sweep state
type EnemyMovementResource struct {
	Direction float64 // -1 or +1
	Speed     float64 // Units per fixed tick
	Advance   bool    // Descend on the next fixed tick instead of sweeping
}

// DifficultyResource drives the fixed-step period
type DifficultyResource struct {
	Value int // Fixed period in DifficultyUnit multiples
	Kills int // Enemy kills in the current level
}

// LevelResource is the 1-based level counter
type LevelResource struct {
	Value int
}

// GameStateResource mirrors the FSM leaf at step boundaries
type GameStateResource struct {
	State core.GameState
}

// InputResource holds the provider and the snapshot polled this frame
type InputResource struct {
	Provider input.Provider
	Snapshot input.Snapshot
}

// AudioPlayer plays a cue; returns false when the cue is unavailable
type AudioPlayer interface {
	Play(sound core.SoundType) bool
}

// AudioResource wraps the optional audio player
type AudioResource struct {
	Player AudioPlayer
}

// Play forwards to the player; nil-safe
func (a *AudioResource) Play(sound core.SoundType) bool {
	if a == nil || a.Player == nil {
		return false
	}
	return a.Player.Play(sound)
}

// NoteIndexResource is the round-robin cadence position 0..3
type NoteIndexResource struct {
	Value int
}

// TimeResource is updated by the scheduler before systems run
type TimeResource struct {
	// Delta is the clamped duration of the current frame
	Delta time.Duration
	// FixedPeriod is the period used by the latest fixed tick
	FixedPeriod time.Duration
	// Elapsed is the simulated time across all frames
	Elapsed time.Duration

	FrameNumber int64
	FixedTicks  int64
}

// Rand is the randomness consulted by bomb drops and UFO bounties
type Rand interface {
	// Float64 returns a value in [0,1)
	Float64() float64
	// IntN returns a value in [0,n)
	IntN(n int) int
}

// NewRand creates a PCG source seeded from a single value
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Resources provides direct pointers to every singleton resource
type Resources struct {
	Player     *PlayerResource
	Movement   *EnemyMovementResource
	Difficulty *DifficultyResource
	Level      *LevelResource
	State      *GameStateResource
	Input      *InputResource
	Audio      *AudioResource
	Notes      *NoteIndexResource
	Time       *TimeResource

	Tuning config.Tuning
	RNG    Rand
	Status *status.Registry
	Logger *zap.Logger
}

// NewResources builds resources at their initial values
// A nil rng is replaced by a PCG seeded from tuning.Seed; a nil logger by a no-op logger
func NewResources(tuning config.Tuning, rng Rand, logger *zap.Logger) *Resources {
	if rng == nil {
		rng = NewRand(tuning.Seed)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resources{
		Player:     &PlayerResource{},
		Movement:   &EnemyMovementResource{},
		Difficulty: &DifficultyResource{},
		Level:      &LevelResource{Value: 1},
		State:      &GameStateResource{State: core.StateMenu},
		Input:      &InputResource{},
		Audio:      &AudioResource{},
		Notes:      &NoteIndexResource{},
		Time:       &TimeResource{},
		Tuning:     tuning,
		RNG:        rng,
		Status:     status.NewRegistry(),
		Logger:     logger,
	}
	r.Player.Lives = tuning.Lives
	r.ResetMovement()
	r.ResetDifficulty()
	return r
}

// ResetMovement restores the sweep to the level's starting direction and speed
func (r *Resources) ResetMovement() {
	r.Movement.Direction = parameter.EnemyStartDirection
	r.Movement.Advance = false
	r.Movement.Speed = r.Tuning.EnemyBaseSpeed + float64(r.Level.Value-1)*r.Tuning.EnemySpeedPerLevel
}

// ResetDifficulty starts the level at its base difficulty with no kills
func (r *Resources) ResetDifficulty() {
	r.Difficulty.Kills = 0
	r.Difficulty.Value = DifficultyFor(r.Tuning, r.Level.Value, 0)
}

// FixedPeriod converts the current difficulty into the fixed-step period
func (r *Resources) FixedPeriod() time.Duration {
	v := max(r.Difficulty.Value, 1)
	return time.Duration(v) * r.Tuning.DifficultyUnit
}

// DifficultyFor computes the difficulty of a level after kills enemy kills
// Non-increasing in both level and kills, never below the floor
func DifficultyFor(t config.Tuning, level, kills int) int {
	levelBase := max(t.DifficultyFloor, t.DifficultyBase-(level-1)*t.DifficultyPerLevel)
	return max(t.DifficultyFloor, levelBase-kills*t.DifficultyPerKill)
}
