package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is the FSM pseudo-event evaluated once per step boundary
	// Never emitted on the bus
	EventTick EventType = iota

	// EventController requests one cannon step
	// Trigger: InputSystem while Left/Right held
	// Consumer: CannonSystem | Payload: *ControllerPayload
	EventController

	// EventFired requests a laser shot
	// Trigger: InputSystem on Space-down edge
	// Consumer: FireLaserSystem | Payload: nil
	EventFired

	// EventHit reports a laser collision with a hitable entity
	// Trigger: LaserHitSystem
	// Consumer: EnemyHitSoundSystem | Payload: *HitPayload
	EventHit

	// EventEnemyAdvancement reports a formation wall contact
	// Trigger: EnemyMotionSystem
	// Consumer: observers | Payload: nil
	EventEnemyAdvancement

	// EventPlayerHit reports a bomb striking the cannon
	// Trigger: BombHitSystem
	// Consumer: FSM guards via Player resource | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventSoundRequest requests audio playback
	// Trigger: systems requiring audio feedback
	// Consumer: audio handler at the step boundary | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventStartGame requests leaving Menu or GameOver
	// Trigger: MenuSystem
	// Consumer: FSM | Payload: nil
	EventStartGame

	eventTypeCount
)

// String returns the registered name of the event type
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}
