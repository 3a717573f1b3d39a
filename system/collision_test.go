package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/parameter"
)


func TestLaserHitCreditsEnemyBounty(t *testing.T) {
	w := newPlayingWorld(t)
	squid := SpawnEnemy(w, 5, 0)
	crab := SpawnEnemy(w, 5, 1)
	SpawnCannon(w)
	w.Commands.Flush()

	w.Events.Emit(event.EventFired, nil)
	runSystems(w, NewFireLaserSystem(w))
	laser := w.Components.Laser.All()[0]
	sq := position(t, w, squid)
	moveTo(w, laser, sq.X, sq.Y)

	runSystems(w, NewLaserHitSystem(w))

	assert.Equal(t, 30, w.Resources.Player.Score)
	assert.Equal(t, 1, w.Resources.Difficulty.Kills)
	assert.False(t, w.Alive(laser))
	assert.False(t, w.Alive(squid))
	assert.True(t, w.Alive(crab))

	hits := w.Events.Read(event.EventHit)
	require.Len(t, hits, 1)
	payload := hits[0].Payload.(*event.HitPayload)
	assert.Equal(t, squid, payload.Target)
	assert.Equal(t, 30, payload.Points)
	assert.True(t, payload.Enemy)
}

func TestLaserHitPrefersLowestEntityID(t *testing.T) {
	w := newPlayingWorld(t)
	first := SpawnEnemy(w, 0, 4)
	second := SpawnEnemy(w, 0, 0)
	SpawnCannon(w)
	w.Commands.Flush()
	moveTo(w, second, 0, 0)
	moveTo(w, first, 0, 0)

	w.Events.Emit(event.EventFired, nil)
	runSystems(w, NewFireLaserSystem(w))
	moveTo(w, w.Components.Laser.All()[0], 0, 0)
	runSystems(w, NewLaserHitSystem(w))

	assert.False(t, w.Alive(first))
	assert.True(t, w.Alive(second))
	assert.Equal(t, 10, w.Resources.Player.Score)
	assert.Equal(t, 1, w.Events.Count(event.EventHit))
}

func TestLaserHitUfoUsesHitpoints(t *testing.T) {
	w := newPlayingWorld(t)
	w.Resources.RNG = &fixedRand{index: 4}
	ufo := SpawnUfo(w)
	SpawnCannon(w)
	w.Commands.Flush()

	w.Events.Emit(event.EventFired, nil)
	runSystems(w, NewFireLaserSystem(w))
	p := position(t, w, ufo)
	moveTo(w, w.Components.Laser.All()[0], p.X, p.Y)
	runSystems(w, NewLaserHitSystem(w))

	assert.Equal(t, 300, w.Resources.Player.Score)
	assert.Zero(t, w.Resources.Difficulty.Kills)
	assert.Zero(t, w.Components.Ufo.Count())
}

func TestLaserHitBareTargetScoresNothing(t *testing.T) {
	w := newPlayingWorld(t)
	c := &w.Components
	target := w.CreateEntity()
	c.Hitable.Set(target, component.HitableComponent{})
	c.Transform.Set(target, component.TransformComponent{X: 50, Y: 50})
	c.Size.Set(target, component.SizeComponent{W: 10, H: 10})
	laser := w.CreateEntity()
	c.Laser.Set(laser, component.LaserBeamComponent{})
	c.Transform.Set(laser, component.TransformComponent{X: 50, Y: 50})
	c.Size.Set(laser, component.SizeComponent{W: 1, H: 10})

	runSystems(w, NewLaserHitSystem(w))
	assert.Zero(t, w.Resources.Player.Score)
	assert.False(t, w.Alive(target))
	assert.Equal(t, 1, w.Events.Count(event.EventHit))
}

func TestLaserMissLeavesWorldIntact(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnFormation(w)
	SpawnCannon(w)
	w.Commands.Flush()
	w.Events.Emit(event.EventFired, nil)
	runSystems(w, NewFireLaserSystem(w))

	before := w.EntityCount()
	runSystems(w, NewLaserHitSystem(w))
	assert.Equal(t, before, w.EntityCount())
	assert.Zero(t, w.Events.Count(event.EventHit))
}

func TestBombHitCostsLife(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnCannon(w)
	bomb := SpawnBomb(w, 5, parameter.CannonY+20)
	miss := SpawnBomb(w, 100, parameter.CannonY)
	w.Commands.Flush()

	runSystems(w, NewBombHitSystem(w))

	assert.False(t, w.Alive(bomb))
	assert.True(t, w.Alive(miss))
	assert.Equal(t, 2, w.Resources.Player.Lives)
	hits := w.Events.Read(event.EventPlayerHit)
	require.Len(t, hits, 1)
	assert.Equal(t, 2, hits[0].Payload.(*event.PlayerHitPayload).Lives)
}

func TestBombHitLivesFloorAtZero(t *testing.T) {
	w := newPlayingWorld(t)
	w.Resources.Player.Lives = 1
	SpawnCannon(w)
	SpawnBomb(w, 0, parameter.CannonY)
	SpawnBomb(w, 0, parameter.CannonY)
	w.Commands.Flush()

	runSystems(w, NewBombHitSystem(w))
	assert.Zero(t, w.Resources.Player.Lives)
	assert.Zero(t, w.Components.Bomb.Count())
	assert.Equal(t, 2, w.Events.Count(event.EventPlayerHit))
}

func TestBombFallsOntoCannon(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnCannon(w)
	SpawnBomb(w, 0, 0)
	w.Commands.Flush()

	move, hit := NewBombMotionSystem(w), NewBombHitSystem(w)
	frames := 0
	for w.Components.Bomb.Count() > 0 && frames < 500 {
		runSystems(w, move, hit)
		frames++
	}
	// contact when |y - cannonY| <= (30+16)/2
	assert.Equal(t, int(-parameter.CannonY-23), frames)
	assert.Equal(t, 2, w.Resources.Player.Lives)
	assert.Equal(t, 1, w.Events.Count(event.EventPlayerHit))
}

func TestFrontRankPicksLowestInvaderPerColumn(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnFormation(w)
	w.Commands.Flush()

	front := FrontRank(w)
	require.Len(t, front, parameter.FormationCols)
	for col, e := range front {
		pos, _ := w.Components.EnemyPosition.Get(e)
		assert.Equal(t, col, pos.Col)
		assert.Equal(t, parameter.FormationRows-1, pos.Row)
	}

	w.DestroyEntity(front[3])
	front = FrontRank(w)
	pos, _ := w.Components.EnemyPosition.Get(front[3])
	assert.Equal(t, 3, pos.Row)
}

func TestBombDropThreshold(t *testing.T) {
	tests := []struct {
		name  string
		roll  float64
		bombs int
	}{
		{"roll under threshold drops from every column", 0.05, parameter.FormationCols},
		{"roll over threshold drops nothing", 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newPlayingWorld(t)
			rng := &fixedRand{roll: tt.roll}
			w.Resources.RNG = rng
			SpawnFormation(w)
			w.Commands.Flush()

			runSystems(w, NewBombDropSystem(w))
			assert.Equal(t, tt.bombs, w.Components.Bomb.Count())
			assert.Equal(t, parameter.FormationCols, rng.calls)
		})
	}
}

func TestUfoTimerSpawnsOnExpiry(t *testing.T) {
	w := newPlayingWorld(t)
	w.Resources.RNG = &fixedRand{}
	w.Resources.Time.FixedPeriod = time.Second
	SpawnUfoTimer(w)
	w.Commands.Flush()

	sys := NewUfoSpawnSystem(w)
	for range 9 {
		runSystems(w, sys)
	}
	assert.Zero(t, w.Components.Ufo.Count())
	runSystems(w, sys)
	require.Equal(t, 1, w.Components.Ufo.Count())

	ufo := w.Components.Ufo.All()[0]
	hp, _ := w.Components.Hitpoints.Get(ufo)
	assert.Contains(t, parameter.UfoBounties, hp.Value)

	// second expiry while the first is still flying
	for range 10 {
		runSystems(w, sys)
	}
	assert.Equal(t, 1, w.Components.Ufo.Count())
}

func TestHUDText(t *testing.T) {
	w := newPlayingWorld(t)
	SpawnHUD(w)
	w.Commands.Flush()
	w.Resources.Player.Score = 120
	w.Resources.Player.Lives = 2

	runSystems(w, NewScoreUISystem(w), NewLifesUISystem(w))

	score := w.Components.ScoreUI.All()[0]
	lives := w.Components.LifesUI.All()[0]
	st, _ := w.Components.Text.Get(score)
	lt, _ := w.Components.Text.Get(lives)
	assert.Equal(t, "SCORE 120", st.Value)
	assert.Equal(t, component.AnchorTopLeft, st.Anchor)
	assert.Equal(t, "LIVES 2", lt.Value)
	assert.Equal(t, component.AnchorBottomLeft, lt.Anchor)
}

func TestMenuStartsOnConfirm(t *testing.T) {
	w := newPlayingWorld(t)
	w.Resources.State.State = core.StateMenu
	menu := NewMenuSystem(w)

	w.Resources.Input.Snapshot = input.Snapshot{Pressed: input.Keys(input.KeyConfirm)}
	menu.Update()
	assert.Zero(t, w.Events.Count(event.EventStartGame), "no button spawned yet")

	SpawnMenu(w, false)
	w.Commands.Flush()
	menu.Update()
	assert.Equal(t, 1, w.Events.Count(event.EventStartGame))

	w.Events.Clear()
	w.Resources.Input.Snapshot = input.Snapshot{Held: input.Keys(input.KeyConfirm)}
	menu.Update()
	assert.Zero(t, w.Events.Count(event.EventStartGame), "held key is not a press")
}

func TestMenuIgnoresUnknownCommand(t *testing.T) {
	w := newPlayingWorld(t)
	menu := NewMenuSystem(w)
	SpawnMenu(w, false)
	w.Commands.Flush()

	btn := w.Components.MenuButton.All()[0]
	w.Components.MenuButton.Update(btn, func(b *component.MenuButtonComponent) { b.Command = "Launch" })

	w.Resources.Input.Snapshot = input.Snapshot{Pressed: input.Keys(input.KeyFire)}
	menu.Update()
	assert.Zero(t, w.Events.Len())
}

func TestDifficultyNeverIncreasesWithinLevel(t *testing.T) {
	w := newPlayingWorld(t)
	d := w.Resources.Difficulty
	sys := NewDifficultySystem(w)

	prev := d.Value
	for kills := 0; kills < 150; kills++ {
		d.Kills = kills
		sys.Update()
		require.LessOrEqual(t, d.Value, prev)
		prev = d.Value
	}
	assert.Equal(t, w.Resources.Tuning.DifficultyFloor, d.Value)

	d.Value = 3
	sys.Update()
	assert.Equal(t, 3, d.Value)
}
