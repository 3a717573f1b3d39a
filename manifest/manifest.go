package manifest

import (
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/system"
)

// SystemDef pairs a registry name with its constructor
// Execution order comes from the system's Priority, not slice order
type SystemDef struct {
	Name string
	New  func(w *engine.World) engine.System
}

// FrameSystems run once per frame step
var FrameSystems = []SystemDef{
	{"player_input", system.NewInputSystem},
	{"move_cannon", system.NewCannonSystem},
	{"fire_laser", system.NewFireLaserSystem},
	{"move_laser", system.NewLaserMotionSystem},
	{"move_ufo", system.NewUfoMotionSystem},
	{"move_bomb", system.NewBombMotionSystem},
	{"detect_laser_hit", system.NewLaserHitSystem},
	{"detect_bomb_hit", system.NewBombHitSystem},
	{"enemy_hit_sound", system.NewEnemyHitSoundSystem},
	{"score_ui", system.NewScoreUISystem},
	{"lifes_ui", system.NewLifesUISystem},
	{"menu", system.NewMenuSystem},
}

// FixedSystems run once per fixed tick
var FixedSystems = []SystemDef{
	{"move_enemies", system.NewEnemyMotionSystem},
	{"increase_difficulty", system.NewDifficultySystem},
	{"drop_bomb", system.NewBombDropSystem},
	{"invader_cadence", system.NewInvaderCadenceSystem},
	{"ufo_timer", system.NewUfoSpawnSystem},
}

// RegisterSystems adds every system, the invariant guard and the audio handler to the scheduler
func RegisterSystems(s *engine.Scheduler, w *engine.World, strictInvariants bool) *system.AudioHandler {
	for _, def := range FrameSystems {
		s.AddFrameSystem(def.New(w))
	}
	s.AddFrameSystem(system.NewInvariantSystem(w, strictInvariants))
	for _, def := range FixedSystems {
		s.AddFixedSystem(def.New(w))
	}

	audio := system.NewAudioHandler()
	s.RegisterEventHandler(audio)
	return audio
}
