package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
)

func TestDifficultyFor(t *testing.T) {
	tuning := config.Default().Tuning

	tests := []struct {
		name         string
		level, kills int
		want         int
	}{
		{"fresh level one", 1, 0, 100},
		{"kills lower difficulty", 1, 30, 70},
		{"later levels start lower", 3, 0, 80},
		{"floor holds", 1, 500, tuning.DifficultyFloor},
		{"floor holds for high levels", 50, 0, tuning.DifficultyFloor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DifficultyFor(tuning, tt.level, tt.kills))
		})
	}
}

func TestDifficultyMonotoneInKills(t *testing.T) {
	tuning := config.Default().Tuning
	prev := DifficultyFor(tuning, 1, 0)
	for k := 1; k <= 60; k++ {
		d := DifficultyFor(tuning, 1, k)
		assert.LessOrEqual(t, d, prev)
		prev = d
	}
}

func TestNewResourcesDefaults(t *testing.T) {
	r := NewResources(config.Default().Tuning, nil, nil)
	assert.Equal(t, 3, r.Player.Lives)
	assert.Equal(t, 1, r.Level.Value)
	assert.Equal(t, core.StateMenu, r.State.State)
	assert.Equal(t, 1.0, r.Movement.Direction)
	assert.Equal(t, time.Second, r.FixedPeriod())
	assert.False(t, r.Audio.Play(core.SoundShoot), "no player wired")
}

func TestResetMovementScalesWithLevel(t *testing.T) {
	r := NewResources(config.Default().Tuning, nil, nil)
	r.Level.Value = 3
	r.Movement.Direction = -1
	r.Movement.Advance = true
	r.ResetMovement()
	assert.Equal(t, 1.0, r.Movement.Direction)
	assert.False(t, r.Movement.Advance)
	assert.Equal(t, r.Tuning.EnemyBaseSpeed+2*r.Tuning.EnemySpeedPerLevel, r.Movement.Speed)
}

func TestNewRandIsDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(5), b.IntN(5))
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Unix(100, 0)
	m := NewMockTimeProvider(start)
	m.Advance(time.Second)
	assert.Equal(t, start.Add(time.Second), m.Now())
}
