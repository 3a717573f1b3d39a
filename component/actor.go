package component

// CannonComponent marks the player ship
type CannonComponent struct{}

// LaserBeamComponent marks the single in-flight player projectile
type LaserBeamComponent struct{}

// BombComponent marks a falling hazard dropped by an invader
type BombComponent struct{}

// UfoComponent is the bonus target; bounty lives in HitpointsComponent
type UfoComponent struct {
	Direction float64 // -1 or +1
}

// HitableComponent makes an entity a valid laser target
type HitableComponent struct{}

// HitpointsComponent is the score awarded on destruction, overriding EnemyComponent.Points
type HitpointsComponent struct {
	Value int
}
