package physics

import "math"

// Config holds the tunable physical constants for car simulation.
// It is created once at startup and read-only afterwards; every car shares
// the same config.
type Config struct {
	// RotationalAcceleration is how fast angular velocity builds while a
	// turn key is held, in radians/second^2.
	RotationalAcceleration float64 `yaml:"rotational_acceleration"`
	// MaxRotationalVelocity caps angular velocity in radians/second.
	MaxRotationalVelocity float64 `yaml:"max_rotational_velocity"`
	// ForwardAcceleration is applied along the heading while the throttle
	// is held, in track units/second^2.
	ForwardAcceleration float64 `yaml:"forward_acceleration"`
	// Friction is the per-tick velocity decay multiplier, in (0, 1].
	Friction float64 `yaml:"friction"`
	// DriftFactor blends between grip and slide: 0 removes all sideways
	// velocity each tick, 1 keeps velocity unconstrained.
	DriftFactor float64 `yaml:"drift_factor"`
	// MaxForwardVelocity caps speed in track units/second.
	MaxForwardVelocity float64 `yaml:"max_forward_velocity"`
}

// DefaultConfig returns the reference tuning for the prototype car.
func DefaultConfig() *Config {
	return &Config{
		RotationalAcceleration: 50,
		MaxRotationalVelocity:  2 * math.Pi,
		ForwardAcceleration:    200,
		Friction:               0.97,
		DriftFactor:            0.99,
		MaxForwardVelocity:     150,
	}
}
