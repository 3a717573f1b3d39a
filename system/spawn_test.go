package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/parameter"
)

func TestSpawnFormationGridLayout(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnFormation(w)
	assert.Zero(t, w.Components.Enemy.Count(), "spawns are deferred until flush")

	w.Commands.Flush()
	c := &w.Components
	require.Equal(t, parameter.FormationSize, c.Enemy.Count())

	cells := make(map[component.EnemyPositionComponent]bool)
	for _, e := range c.Enemy.All() {
		enemy, _ := c.Enemy.Get(e)
		pos, _ := c.EnemyPosition.Get(e)
		tr, _ := c.Transform.Get(e)
		size, _ := c.Size.Get(e)

		assert.False(t, cells[pos], "duplicate cell %v", pos)
		cells[pos] = true

		assert.Equal(t, component.KindForRow(pos.Row), enemy.Kind)
		assert.Equal(t, enemy.Kind.Points(), enemy.Points)
		assert.Equal(t, 33.0*float64(pos.Col)-192, tr.X)
		assert.Equal(t, 174.0-33*float64(pos.Row), tr.Y)
		assert.Equal(t, component.SizeComponent{W: 32, H: 32}, size)
		assert.True(t, c.Hitable.Has(e))
	}
}

func TestSpawnFormationRowBounties(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnFormation(w)
	w.Commands.Flush()

	byRow := make(map[int]int)
	for _, e := range w.Components.EnemyPosition.All() {
		pos, _ := w.Components.EnemyPosition.Get(e)
		enemy, _ := w.Components.Enemy.Get(e)
		byRow[pos.Row] = enemy.Points
	}
	assert.Equal(t, map[int]int{0: 30, 1: 20, 2: 20, 3: 10, 4: 10}, byRow)
}

func TestSpawnCannonAtCenter(t *testing.T) {
	w := newPlayingWorld(t)
	e := SpawnCannon(w)
	w.Commands.Flush()

	p := position(t, w, e)
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, parameter.CannonY, p.Y)
	size, _ := w.Components.Size.Get(e)
	assert.Equal(t, component.SizeComponent{W: 26, H: 16}, size)
}

func TestSpawnUfoOppositeSweepDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction float64
		wantX     float64
	}{
		{"sweeping right starts at left wall", 1, -parameter.RightWall},
		{"sweeping left starts at right wall", -1, parameter.RightWall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newPlayingWorld(t)
			w.Resources.RNG = &fixedRand{index: 3}
			w.Resources.Movement.Direction = tt.direction

			e := SpawnUfo(w)
			w.Commands.Flush()

			p := position(t, w, e)
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, parameter.UfoY, p.Y)
			ufo, _ := w.Components.Ufo.Get(e)
			assert.Equal(t, tt.direction, ufo.Direction)
			hp, _ := w.Components.Hitpoints.Get(e)
			assert.Equal(t, 200, hp.Value)
			assert.True(t, w.Components.Hitable.Has(e))
		})
	}
}

func TestSpawnMenuGameOverSign(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnMenu(w, false)
	w.Commands.Flush()
	assert.Equal(t, 1, w.Components.MenuButton.Count())
	assert.Zero(t, w.Components.GameOverSign.Count())

	SpawnMenu(w, true)
	w.Commands.Flush()
	assert.Equal(t, 1, w.Components.GameOverSign.Count())

	e := w.Components.GameOverSign.All()[0]
	text, _ := w.Components.Text.Get(e)
	assert.Equal(t, "GAME OVER", text.Value)
}

func TestDespawnSceneOnlyRemovesScene(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnCannon(w)
	SpawnHUD(w)
	SpawnMenu(w, true)
	w.Commands.Flush()
	require.Equal(t, 5, w.EntityCount())

	n := DespawnScene(w, core.SceneMenu)
	w.Commands.Flush()
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, w.EntityCount())
	assert.Zero(t, w.Components.MenuButton.Count())
	assert.Equal(t, 1, w.Components.Cannon.Count())

	DespawnScene(w, core.SceneGame)
	w.Commands.Flush()
	assert.Zero(t, w.EntityCount())
}
