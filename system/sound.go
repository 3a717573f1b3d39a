package system

import (
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
)

// EnemyHitSoundSystem requests the invader-killed cue for every hit this frame
type EnemyHitSoundSystem struct {
	engine.SystemBase
	playingGate
}

// NewEnemyHitSoundSystem creates the hit cue emitter
func NewEnemyHitSoundSystem(world *engine.World) engine.System {
	return &EnemyHitSoundSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *EnemyHitSoundSystem) Name() string  { return "enemy_hit_sound" }
func (s *EnemyHitSoundSystem) Priority() int { return parameter.PriorityEnemyHitSound }

func (s *EnemyHitSoundSystem) Update() {
	for range s.World.Events.Read(event.EventHit) {
		requestSound(s.World, core.SoundInvaderKilled)
	}
}

// InvaderCadenceSystem emits one note of the four-note march per fixed tick
type InvaderCadenceSystem struct {
	engine.SystemBase
	playingGate
}

// NewInvaderCadenceSystem creates the march cue emitter
func NewInvaderCadenceSystem(world *engine.World) engine.System {
	return &InvaderCadenceSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *InvaderCadenceSystem) Name() string  { return "invader_cadence" }
func (s *InvaderCadenceSystem) Priority() int { return parameter.PriorityInvaderCadence }

func (s *InvaderCadenceSystem) Update() {
	notes := s.Resource.Notes
	requestSound(s.World, core.InvaderNote(notes.Value))
	notes.Value = (notes.Value + 1) % core.InvaderNoteCount
}

// AudioHandler plays sound requests at the step boundary
// Registered with the scheduler router rather than run as a system
type AudioHandler struct {
	muted bool
}

// NewAudioHandler creates the boundary audio dispatcher
func NewAudioHandler() *AudioHandler {
	return &AudioHandler{}
}

// SetMuted suppresses playback without dropping the requests from the bus
func (h *AudioHandler) SetMuted(muted bool) {
	h.muted = muted
}

// EventTypes returns the event types AudioHandler handles
func (h *AudioHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

// HandleEvent forwards the cue to the audio resource; missing player or asset is ignored
func (h *AudioHandler) HandleEvent(w *engine.World, ev event.GameEvent) {
	if h.muted {
		return
	}
	if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		w.Resources.Audio.Play(p.Sound)
	}
}
