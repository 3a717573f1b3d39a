package manifest

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/engine/fsm"
	"github.com/lixenwraith/invaders/system"
)

// Action and guard names referenced by the FSM graph
const (
	ActionSpawnMenu       = "SpawnMenu"
	ActionDespawnScene    = "DespawnScene"
	ActionResetPlayer     = "ResetPlayer"
	ActionResetMovement   = "ResetMovement"
	ActionResetDifficulty = "ResetDifficulty"
	ActionSpawnCannon     = "SpawnCannon"
	ActionSpawnFormation  = "SpawnFormation"
	ActionSpawnHUD        = "SpawnHUD"
	ActionSpawnUfoTimer   = "SpawnUfoTimer"
	ActionNextLevel       = "NextLevel"

	GuardPlayerDead       = "PlayerDead"
	GuardFormationCleared = "FormationCleared"
)

// RegisterFSMComponents registers all game-specific actions and guards with the FSM
func RegisterFSMComponents(m *fsm.Machine[*engine.World]) {
	registerSceneActions(m)
	registerSessionActions(m)
	registerGuards(m)
}

// === Scene Actions ===

// Spawns are queued; the scheduler flushes them at the boundary
func registerSceneActions(m *fsm.Machine[*engine.World]) {
	m.RegisterAction(ActionSpawnMenu, func(w *engine.World, arg string) {
		system.SpawnMenu(w, arg == "game_over")
	})

	m.RegisterAction(ActionDespawnScene, func(w *engine.World, arg string) {
		scene, ok := core.ParseScene(arg)
		if !ok {
			w.Resources.Logger.Warn("despawn of unknown scene", zap.String("scene", arg))
			return
		}
		n := system.DespawnScene(w, scene)
		w.Resources.Logger.Debug("scene despawned", zap.Stringer("scene", scene), zap.Int("entities", n))
	})

	m.RegisterAction(ActionSpawnCannon, func(w *engine.World, _ string) {
		system.SpawnCannon(w)
	})

	m.RegisterAction(ActionSpawnFormation, func(w *engine.World, _ string) {
		system.SpawnFormation(w)
	})

	m.RegisterAction(ActionSpawnHUD, func(w *engine.World, _ string) {
		system.SpawnHUD(w)
	})

	m.RegisterAction(ActionSpawnUfoTimer, func(w *engine.World, _ string) {
		system.SpawnUfoTimer(w)
	})
}

// === Session Actions ===

func registerSessionActions(m *fsm.Machine[*engine.World]) {
	// ResetPlayer starts a new session at level 1
	m.RegisterAction(ActionResetPlayer, func(w *engine.World, _ string) {
		res := w.Resources
		res.Player.Lives = res.Tuning.Lives
		res.Player.Score = 0
		res.Player.Session = uuid.NewString()
		res.Level.Value = 1
		res.Notes.Value = 0
		res.Logger.Info("session started", zap.String("session", res.Player.Session))
	})

	m.RegisterAction(ActionResetMovement, func(w *engine.World, _ string) {
		w.Resources.ResetMovement()
	})

	// Level base already reflects the current level, so this also hardens after NextLevel
	m.RegisterAction(ActionResetDifficulty, func(w *engine.World, _ string) {
		w.Resources.ResetDifficulty()
	})

	m.RegisterAction(ActionNextLevel, func(w *engine.World, _ string) {
		res := w.Resources
		res.Level.Value++
		res.Logger.Info("level complete",
			zap.String("session", res.Player.Session),
			zap.Int("next_level", res.Level.Value),
			zap.Int("score", res.Player.Score),
			zap.Int("lives", res.Player.Lives),
		)
	})
}

// === Guards ===

// Declared order in the graph puts PlayerDead before FormationCleared
func registerGuards(m *fsm.Machine[*engine.World]) {
	m.RegisterGuard(GuardPlayerDead, func(w *engine.World) bool {
		return w.Resources.Player.Lives <= 0
	})

	m.RegisterGuard(GuardFormationCleared, func(w *engine.World) bool {
		return w.Components.Enemy.Count() == 0
	})
}
