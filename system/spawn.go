package system

import (
	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
)

// Spawners queue entities through World.Commands; they appear on the next flush

// FormationCell returns the world-space center of a formation cell at spawn time
func FormationCell(col, row int) (x, y float64) {
	x = parameter.FormationColPitch*float64(col) - parameter.ScreenWidth/2 + parameter.SpriteSize
	y = parameter.TopWall - parameter.SpriteSize - parameter.FormationRowPitch*float64(row)
	return x, y
}

// SpawnCannon queues the player ship at the horizontal center
func SpawnCannon(w *engine.World) core.Entity {
	c := &w.Components
	eb := w.Commands.Spawn()
	engine.With(eb, c.Cannon, component.CannonComponent{})
	engine.With(eb, c.Transform, component.TransformComponent{X: 0, Y: parameter.CannonY})
	engine.With(eb, c.Size, component.SizeComponent{W: parameter.CannonWidth, H: parameter.CannonHeight})
	engine.With(eb, c.Sprite, component.SpriteComponent{Asset: parameter.AssetCannon})
	engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneGame})
	return eb.Build()
}

// SpawnEnemy queues one invader at its formation cell
func SpawnEnemy(w *engine.World, col, row int) core.Entity {
	c := &w.Components
	kind := component.KindForRow(row)
	x, y := FormationCell(col, row)

	eb := w.Commands.Spawn()
	engine.With(eb, c.Enemy, component.EnemyComponent{Kind: kind, Points: kind.Points()})
	engine.With(eb, c.EnemyPosition, component.EnemyPositionComponent{Col: col, Row: row})
	engine.With(eb, c.Transform, component.TransformComponent{X: x, Y: y})
	engine.With(eb, c.Size, component.SizeComponent{W: parameter.EnemyWidth, H: parameter.EnemyHeight})
	engine.With(eb, c.Hitable, component.HitableComponent{})
	engine.With(eb, c.Sprite, component.SpriteComponent{Asset: kind.Asset()})
	engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneGame})
	return eb.Build()
}

// SpawnFormation queues the full 5x11 grid, row by row from the top
func SpawnFormation(w *engine.World) {
	for row := 0; row < parameter.FormationRows; row++ {
		for col := 0; col < parameter.FormationCols; col++ {
			SpawnEnemy(w, col, row)
		}
	}
}

// SpawnBomb queues a bomb centered at (x, y)
func SpawnBomb(w *engine.World, x, y float64) core.Entity {
	c := &w.Components
	eb := w.Commands.Spawn()
	engine.With(eb, c.Bomb, component.BombComponent{})
	engine.With(eb, c.Transform, component.TransformComponent{X: x, Y: y})
	engine.With(eb, c.Size, component.SizeComponent{W: parameter.BombWidth, H: parameter.BombHeight})
	engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneGame})
	return eb.Build()
}

// SpawnUfo queues the bonus target at the wall opposite the sweep, flying along it
func SpawnUfo(w *engine.World) core.Entity {
	c := &w.Components
	res := w.Resources

	dir := 1.0
	if res.Movement.Direction < 0 {
		dir = -1
	}
	bounty := 0
	if n := len(res.Tuning.UfoBounties); n > 0 {
		bounty = res.Tuning.UfoBounties[res.RNG.IntN(n)]
	}

	eb := w.Commands.Spawn()
	engine.With(eb, c.Ufo, component.UfoComponent{Direction: dir})
	engine.With(eb, c.Transform, component.TransformComponent{X: -dir * parameter.RightWall, Y: parameter.UfoY})
	engine.With(eb, c.Size, component.SizeComponent{W: parameter.UfoWidth, H: parameter.UfoHeight})
	engine.With(eb, c.Hitable, component.HitableComponent{})
	engine.With(eb, c.Hitpoints, component.HitpointsComponent{Value: bounty})
	engine.With(eb, c.Sprite, component.SpriteComponent{Asset: parameter.AssetUfo})
	engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneGame})
	return eb.Build()
}

// SpawnUfoTimer queues the repeating UFO spawn timer
func SpawnUfoTimer(w *engine.World) core.Entity {
	c := &w.Components
	eb := w.Commands.Spawn()
	engine.With(eb, c.UfoTimer, component.UfoSpawnTimerComponent{
		Duration:  w.Resources.Tuning.UfoSpawnPeriod,
		Repeating: true,
	})
	engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneGame})
	return eb.Build()
}

// SpawnHUD queues the score and lives readouts
func SpawnHUD(w *engine.World) {
	c := &w.Components

	eb := w.Commands.Spawn()
	engine.With(eb, c.ScoreUI, component.ScoreUIComponent{})
	engine.With(eb, c.Text, component.TextComponent{Anchor: component.AnchorTopLeft})
	engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneGame})
	eb.Build()

	eb = w.Commands.Spawn()
	engine.With(eb, c.LifesUI, component.LifesUIComponent{})
	engine.With(eb, c.Text, component.TextComponent{Anchor: component.AnchorBottomLeft})
	engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneGame})
	eb.Build()
}

// SpawnMenu queues the Start Game button, plus the GAME OVER sign when gameOver is set
func SpawnMenu(w *engine.World, gameOver bool) {
	c := &w.Components

	if gameOver {
		eb := w.Commands.Spawn()
		engine.With(eb, c.GameOverSign, component.GameOverSignComponent{})
		engine.With(eb, c.Text, component.TextComponent{Value: parameter.LabelGameOver, Anchor: component.AnchorCenter, Line: -2})
		engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneMenu})
		eb.Build()
	}

	eb := w.Commands.Spawn()
	engine.With(eb, c.MenuButton, component.MenuButtonComponent{Label: parameter.LabelStartGame, Command: event.GetEventName(event.EventStartGame)})
	engine.With(eb, c.Text, component.TextComponent{Value: parameter.LabelStartGame, Anchor: component.AnchorCenter})
	engine.With(eb, c.Scene, component.SceneComponent{Scene: core.SceneMenu})
	eb.Build()
}

// DespawnScene queues removal of every entity scoped to scene
func DespawnScene(w *engine.World, scene core.Scene) int {
	c := &w.Components
	var doomed []core.Entity
	for _, e := range w.Query().With(c.Scene).Execute() {
		if sc, _ := c.Scene.Get(e); sc.Scene == scene {
			doomed = append(doomed, e)
		}
	}
	w.Commands.DespawnAll(doomed)
	return len(doomed)
}
