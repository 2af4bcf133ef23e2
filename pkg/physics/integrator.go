package physics

import (
	"math"

	"github.com/golangdaddy/trackdrift/pkg/geom"
)

// turnDeadZone snaps near-zero steering to exactly zero so floating noise
// from analog-style inputs cannot keep the car creeping around its axis.
const turnDeadZone = 1e-4

// Step advances one car by one fixed simulation tick. It mutates kin in
// place and cannot fail: all inputs are clamped internally. Given identical
// arguments the result is bit-for-bit reproducible.
//
// The stages run in a fixed order; each depends on the previous one:
// normalize controls, rotational dynamics, heading, forward acceleration,
// friction, drift blend with speed clamp, position integration.
func Step(kin *Kinematics, controls *ControlState, cfg *Config, dt float64) {
	// Collapse the four raw inputs into signed [-1, 1] axes. The producer
	// is not trusted to pre-clamp.
	accelControl := clamp(clamp01(controls.AccelForward)-clamp01(controls.AccelBackward), -1, 1)
	turnControl := clamp(clamp01(controls.TurnLeft)-clamp01(controls.TurnRight), -1, 1)
	if math.Abs(turnControl) < turnDeadZone {
		turnControl = 0
	}

	// Steering input fully controls angular motion: releasing the keys
	// kills rotation immediately, there is no angular coasting.
	if turnControl == 0 {
		kin.RotationalVelocity = 0
	} else {
		kin.RotationalVelocity += turnControl * cfg.RotationalAcceleration * dt
		kin.RotationalVelocity = clamp(kin.RotationalVelocity, -cfg.MaxRotationalVelocity, cfg.MaxRotationalVelocity)
		kin.Rotation += kin.RotationalVelocity * dt
		kin.Rotation = wrapAngle(kin.Rotation)
	}

	forward := geom.FromAngle(kin.Rotation)

	// Throttle always pushes along the current heading; there is no
	// strafing.
	kin.Velocity = kin.Velocity.Add(forward.Scale(accelControl * cfg.ForwardAcceleration * dt))

	// Friction decays velocity every tick regardless of input.
	kin.Velocity = kin.Velocity.Scale(cfg.Friction)

	// Drift blend: interpolate between velocity fully projected onto the
	// heading (no slide) and the raw velocity (full slide), then cap the
	// speed. The literal projected/lerp formula is load-bearing; tests pin
	// its output at the edge drift values.
	gripped := kin.Velocity.ProjectOnto(forward)
	kin.Velocity = gripped.Lerp(kin.Velocity, cfg.DriftFactor).ClampLength(cfg.MaxForwardVelocity)

	// Explicit Euler position update.
	kin.Position = kin.Position.Add(kin.Velocity.Scale(dt))
}

// wrapAngle normalizes an angle into [0, 2pi) via Euclidean remainder, so
// wrapping works in both directions.
func wrapAngle(radians float64) float64 {
	wrapped := math.Mod(radians, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}
	// Adding 2pi to a tiny negative remainder can round back up to exactly
	// 2pi; keep the result strictly below it.
	if wrapped >= 2*math.Pi {
		wrapped = 0
	}
	return wrapped
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
