package geom

import "math"

// Vec2 is a 2D vector with float64 components, used for both track-space
// positions and velocities.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle returns the unit vector pointing at the given angle in radians.
func FromAngle(radians float64) Vec2 {
	return Vec2{math.Cos(radians), math.Sin(radians)}
}

// Lerp returns the linear interpolation between v and w at parameter t,
// where t=0 yields v and t=1 yields w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// ProjectOnto returns the projection of v onto the unit vector n.
// n must already be normalized.
func (v Vec2) ProjectOnto(n Vec2) Vec2 {
	return n.Scale(v.Dot(n))
}

// ClampLength returns v shortened to at most max, preserving direction.
// Vectors already within max are returned unchanged.
func (v Vec2) ClampLength(max float64) Vec2 {
	length := v.Length()
	if length <= max || length == 0 {
		return v
	}
	return v.Scale(max / length)
}
