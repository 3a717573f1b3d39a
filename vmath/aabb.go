package vmath

import "math"

// AABB is an axis-aligned box stored as center and full extents
type AABB struct {
	CX, CY float64 // Center
	W, H   float64 // Full width and height
}

// NewAABB builds a box centered on (cx, cy)
func NewAABB(cx, cy, w, h float64) AABB {
	return AABB{CX: cx, CY: cy, W: w, H: h}
}

// Intersects reports overlap; touching edges count as contact
func (a AABB) Intersects(b AABB) bool {
	return math.Abs(a.CX-b.CX) <= (a.W+b.W)/2 &&
		math.Abs(a.CY-b.CY) <= (a.H+b.H)/2
}

// Min returns the bottom-left corner
func (a AABB) Min() Vec2 { return Vec2{a.CX - a.W/2, a.CY - a.H/2} }

// Max returns the top-right corner
func (a AABB) Max() Vec2 { return Vec2{a.CX + a.W/2, a.CY + a.H/2} }

// Contains reports whether the point lies inside or on the box
func (a AABB) Contains(p Vec2) bool {
	return math.Abs(p.X-a.CX) <= a.W/2 && math.Abs(p.Y-a.CY) <= a.H/2
}
