package engine

import "github.com/lixenwraith/invaders/component"

// ComponentStore holds the typed store of every component
type ComponentStore struct {
	// Spatial
	Transform *Store[component.TransformComponent]
	Size      *Store[component.SizeComponent]

	// Actors
	Cannon        *Store[component.CannonComponent]
	Laser         *Store[component.LaserBeamComponent]
	Enemy         *Store[component.EnemyComponent]
	EnemyPosition *Store[component.EnemyPositionComponent]
	Bomb          *Store[component.BombComponent]
	Ufo           *Store[component.UfoComponent]
	Hitable       *Store[component.HitableComponent]
	Hitpoints     *Store[component.HitpointsComponent]

	// Lifecycle
	UfoTimer *Store[component.UfoSpawnTimerComponent]
	Scene    *Store[component.SceneComponent]

	// Presentation
	Sprite       *Store[component.SpriteComponent]
	Text         *Store[component.TextComponent]
	ScoreUI      *Store[component.ScoreUIComponent]
	LifesUI      *Store[component.LifesUIComponent]
	MenuButton   *Store[component.MenuButtonComponent]
	GameOverSign *Store[component.GameOverSignComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Size:      NewStore[component.SizeComponent](),

		Cannon:        NewStore[component.CannonComponent](),
		Laser:         NewStore[component.LaserBeamComponent](),
		Enemy:         NewStore[component.EnemyComponent](),
		EnemyPosition: NewStore[component.EnemyPositionComponent](),
		Bomb:          NewStore[component.BombComponent](),
		Ufo:           NewStore[component.UfoComponent](),
		Hitable:       NewStore[component.HitableComponent](),
		Hitpoints:     NewStore[component.HitpointsComponent](),

		UfoTimer: NewStore[component.UfoSpawnTimerComponent](),
		Scene:    NewStore[component.SceneComponent](),

		Sprite:       NewStore[component.SpriteComponent](),
		Text:         NewStore[component.TextComponent](),
		ScoreUI:      NewStore[component.ScoreUIComponent](),
		LifesUI:      NewStore[component.LifesUIComponent](),
		MenuButton:   NewStore[component.MenuButtonComponent](),
		GameOverSign: NewStore[component.GameOverSignComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (c *ComponentStore) all() []QueryableStore {
	return []QueryableStore{
		c.Transform, c.Size,
		c.Cannon, c.Laser, c.Enemy, c.EnemyPosition, c.Bomb, c.Ufo, c.Hitable, c.Hitpoints,
		c.UfoTimer, c.Scene,
		c.Sprite, c.Text, c.ScoreUI, c.LifesUI, c.MenuButton, c.GameOverSign,
	}
}
