package fsm

import (
	"time"

	"github.com/lixenwraith/invaders/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic hierarchical state machine runtime
// T is the context type passed to actions and guards (e.g., *engine.World)
type Machine[T any] struct {
	// Graph, immutable after load
	nodes          map[StateID]*Node[T]
	InitialStateID StateID

	// Runtime
	activeStateID StateID
	activePath    []StateID // Root -> ... -> leaf
	timeInState   time.Duration

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	OnEnter []Action[T]
	OnExit  []Action[T]

	// Evaluated in declaration order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventTick = evaluated on Update
	Guard    GuardFunc[T]    // nil = always true
}

// Action represents a side effect with pre-compiled argument
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
	Arg  string
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect; arg is the optional string from the graph
type ActionFunc[T any] func(ctx T, arg string)
