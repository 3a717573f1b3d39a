package component

import "github.com/lixenwraith/invaders/vmath"

// TransformComponent is the world-space center of an entity
type TransformComponent struct {
	X, Y float64
}

// SizeComponent holds AABB extents
type SizeComponent struct {
	W, H float64
}

// Box combines transform and size into a collision box
func Box(t TransformComponent, s SizeComponent) vmath.AABB {
	return vmath.NewAABB(t.X, t.Y, s.W, s.H)
}
