package event

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	register("Tick", EventTick)
	register("Controller", EventController)
	register("Fired", EventFired)
	register("Hit", EventHit)
	register("EnemyAdvancement", EventEnemyAdvancement)
	register("PlayerHit", EventPlayerHit)
	register("SoundRequest", EventSoundRequest)
	register("StartGame", EventStartGame)
}

func register(name string, et EventType) {
	nameToType[strings.ToLower(name)] = et
	typeToName[et] = name
}

// GetEventType resolves an event name, case-insensitive
// Used by the FSM loader for transition triggers
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

// GetEventName returns the canonical name for an EventType
func GetEventName(et EventType) string {
	return typeToName[et]
}

// Names returns all registered event names ordered by type
func Names() []string {
	names := make([]string, 0, eventTypeCount)
	for et := EventTick; et < eventTypeCount; et++ {
		names = append(names, typeToName[et])
	}
	return names
}
