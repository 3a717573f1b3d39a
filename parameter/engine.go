package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFixedStepsPerFrame bounds accumulator catch-up after a render stall
	MaxFixedStepsPerFrame = 8

	// MaxFrameDelta clamps a single frame delta fed to the accumulator
	MaxFrameDelta = 250 * time.Millisecond

	// KeyHoldWindow is how long a terminal key counts as held after its last press or repeat
	KeyHoldWindow = 120 * time.Millisecond
)

// ECS Limits
const (
	// EventBusCapacity is the initial capacity of the per-step event slice
	EventBusCapacity = 16

	// StoreInitialCapacity is the initial entity slice capacity of a component store
	StoreInitialCapacity = 64
)

// Logging
const (
	// MaxLogSize triggers rotation of the log file on startup
	MaxLogSize = 10 * 1024 * 1024
)
