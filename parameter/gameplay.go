package parameter

import "time"

// Motion speeds in world units per frame unless noted
const (
	CannonSpeed = 3.0
	LaserSpeed  = 8.0
	BombSpeed   = 1.0
	UfoSpeed    = 2.0
)

// Formation sweep, in world units per fixed tick
const (
	EnemyBaseSpeed      = 4.0
	EnemySpeedPerLevel  = 1.0
	EnemySpeedPerBounce = 0.0
	EnemyStartDirection = 1.0
)

// Bounty per invader kind
const (
	PointsSquid   = 30
	PointsCrab    = 20
	PointsOctopus = 10
)

// UfoBounties is the uniform pool for the bonus target
var UfoBounties = []int{50, 100, 150, 200, 300}

// Bomb drops
const (
	// BombDropThreshold is the percentage gate: a roll r in [0,1) drops when r*100 <= threshold
	BombDropThreshold = 10.0
)

// Player
const (
	PlayerLives = 3
	PlayerScore = 0
	MaxLives    = 3
)

// UFO spawn cadence
const UfoSpawnPeriod = 10 * time.Second

// Difficulty controls the fixed-step period: period = Difficulty * DifficultyUnit
const (
	DifficultyBase     = 100
	DifficultyPerKill  = 1
	DifficultyPerLevel = 10
	DifficultyFloor    = 5
	DifficultyUnit     = 10 * time.Millisecond
)
