package physics

import "github.com/golangdaddy/trackdrift/pkg/geom"

// Kinematics is the mutable physical state of one car. Each car entity owns
// exactly one Kinematics; only Step writes to it, everything else (the
// projector, the renderer) just reads.
type Kinematics struct {
	// Position on the track in logical track units.
	Position geom.Vec2
	// Rotation is the heading in radians, kept normalized into [0, 2pi).
	Rotation float64
	// Velocity in track units per second.
	Velocity geom.Vec2
	// RotationalVelocity in radians per second.
	RotationalVelocity float64
}
