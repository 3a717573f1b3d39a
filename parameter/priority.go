package parameter

// System Execution Priorities (lower runs first)
// Frame and fixed systems are ordered independently
const (
	// Frame step
	PriorityInput         = 10
	PriorityCannon        = 20 // After input
	PriorityFireLaser     = 30 // After input
	PriorityLaserMotion   = 40
	PriorityUfoMotion     = 50
	PriorityBombMotion    = 60
	PriorityLaserHit      = 70
	PriorityBombHit       = 80
	PriorityEnemyHitSound = 90  // After laser hit
	PriorityScoreUI       = 100 // After laser hit
	PriorityLifesUI       = 110 // After bomb hit
	PriorityMenu          = 120
	PriorityInvariant     = 1000 // After all others

	// Fixed step
	PriorityEnemyMotion    = 10
	PriorityDifficulty     = 20 // After enemy motion
	PriorityBombDrop       = 30
	PriorityInvaderCadence = 40
	PriorityUfoSpawn       = 50
)
