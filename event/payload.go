package event

import "github.com/lixenwraith/invaders/core"

// GameEvent is a single message on the bus
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// Direction is a unit step of the cannon
type Direction int8

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

func (d Direction) String() string {
	if d < 0 {
		return "left"
	}
	return "right"
}

// ControllerPayload carries one movement intent
type ControllerPayload struct {
	Direction Direction
}

// HitPayload identifies the destroyed target and the score credited
type HitPayload struct {
	Target core.Entity
	Points int
	Enemy  bool
}

// PlayerHitPayload carries the remaining lives after the hit
type PlayerHitPayload struct {
	Lives int
}

// SoundRequestPayload selects a sound cue
type SoundRequestPayload struct {
	Sound core.SoundType
}
