package core

// GameState is the top-level phase of a session
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateLevelComplete
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ParseGameState maps a state name back to its value
func ParseGameState(name string) (GameState, bool) {
	switch name {
	case "Menu":
		return StateMenu, true
	case "Playing":
		return StatePlaying, true
	case "LevelComplete":
		return StateLevelComplete, true
	case "GameOver":
		return StateGameOver, true
	}
	return StateMenu, false
}

// Scene groups entities that are torn down together on a state exit
type Scene uint8

const (
	SceneGame Scene = iota // Cannon, formation, projectiles, HUD, UFO timer
	SceneMenu              // Start button, game over sign
)

func (s Scene) String() string {
	if s == SceneMenu {
		return "menu"
	}
	return "game"
}

// ParseScene maps a scene name back to its value
func ParseScene(name string) (Scene, bool) {
	switch name {
	case "game":
		return SceneGame, true
	case "menu":
		return SceneMenu, true
	}
	return SceneGame, false
}
