package asset

// DefaultGameFSMConfig is the session state graph
// Transitions are evaluated only at step boundaries; Tick triggers in declared order
const DefaultGameFSMConfig = `
initial = "Menu"

# === FRONT END ===

[states.Menu]
on_enter = [
    { action = "SpawnMenu" },
]
on_exit = [
    { action = "DespawnScene", arg = "menu" },
    { action = "ResetPlayer" },
]
transitions = [
    { trigger = "StartGame", target = "Playing" },
]

# === GAMEPLAY ===

[states.Playing]
on_enter = [
    { action = "ResetMovement" },
    { action = "ResetDifficulty" },
    { action = "SpawnCannon" },
    { action = "SpawnFormation" },
    { action = "SpawnHUD" },
    { action = "SpawnUfoTimer" },
]
transitions = [
    { trigger = "Tick", target = "GameOver", guard = "PlayerDead" },
    { trigger = "Tick", target = "LevelComplete", guard = "FormationCleared" },
]

[states.LevelComplete]
on_enter = [
    { action = "DespawnScene", arg = "game" },
    { action = "NextLevel" },
]
transitions = [
    { trigger = "Tick", target = "Playing" },
]

# === END OF SESSION ===

[states.GameOver]
on_enter = [
    { action = "SpawnMenu", arg = "game_over" },
]
on_exit = [
    { action = "DespawnScene", arg = "menu" },
    { action = "DespawnScene", arg = "game" },
    { action = "ResetPlayer" },
]
transitions = [
    { trigger = "StartGame", target = "Playing" },
]
`
