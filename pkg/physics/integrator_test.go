package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/trackdrift/pkg/geom"
)

const tickDT = 1.0 / 60.0

// TestStep_StraightLineGolden pins the fixed-point sequence of the
// reference tuning: full throttle, no steering, 60 ticks at 60 TPS. The
// values come from running this exact arithmetic order in float64.
func TestStep_StraightLineGolden(t *testing.T) {
	cfg := DefaultConfig()
	kin := &Kinematics{}
	controls := &ControlState{AccelForward: 1}

	for i := 0; i < 60; i++ {
		Step(kin, controls, cfg, tickDT)
	}

	assert.InDelta(t, 59.037221906321044, kin.Position.X, 1e-6)
	assert.InDelta(t, 90.44639233878549, kin.Velocity.X, 1e-6)
	assert.Equal(t, 0.0, kin.Position.Y)
	assert.Equal(t, 0.0, kin.Velocity.Y)
	assert.Equal(t, 0.0, kin.Rotation)
}

// TestStep_TurnRampGolden holds left steering for 10 ticks and releases
// for one: rotational velocity ramps by rotational_acceleration*dt per
// tick, saturates at the cap, and dies instantly on release.
func TestStep_TurnRampGolden(t *testing.T) {
	cfg := DefaultConfig()
	kin := &Kinematics{}
	controls := &ControlState{TurnLeft: 1}

	for i := 1; i <= 10; i++ {
		Step(kin, controls, cfg, tickDT)
		want := math.Min(float64(i)*cfg.RotationalAcceleration*tickDT, cfg.MaxRotationalVelocity)
		assert.InDelta(t, want, kin.RotationalVelocity, 1e-9, "tick %d", i)
	}
	assert.InDelta(t, 0.7030481542478683, kin.Rotation, 1e-9)

	// Release: the very next step zeroes rotational velocity exactly.
	Step(kin, &ControlState{}, cfg, tickDT)
	assert.Equal(t, 0.0, kin.RotationalVelocity)
}

func TestStep_SpeedNeverExceedsMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ForwardAcceleration = 100000 // force the clamp to engage
	cfg.Friction = 1
	kin := &Kinematics{}

	controls := &ControlState{AccelForward: 1, TurnLeft: 1}
	for i := 0; i < 300; i++ {
		Step(kin, controls, cfg, tickDT)
		require.LessOrEqual(t, kin.Velocity.Length(), cfg.MaxForwardVelocity+1e-9, "tick %d", i)
	}
}

func TestStep_ZeroInputDecay(t *testing.T) {
	cfg := DefaultConfig()
	kin := &Kinematics{Velocity: geom.Vec2{X: 30, Y: -20}}
	controls := &ControlState{}

	prev := kin.Velocity.Length()
	for i := 0; i < 120; i++ {
		Step(kin, controls, cfg, tickDT)
		speed := kin.Velocity.Length()
		require.LessOrEqual(t, speed, prev+1e-12, "speed grew at tick %d", i)
		prev = speed
	}
	assert.Less(t, prev, 1.0, "friction should bleed off nearly all speed")
}

func TestStep_ReleaseStopsRotation(t *testing.T) {
	cfg := DefaultConfig()
	kin := &Kinematics{RotationalVelocity: 5.5, Rotation: 1.2}

	Step(kin, &ControlState{}, cfg, tickDT)
	assert.Equal(t, 0.0, kin.RotationalVelocity)
	// Rotation itself is untouched when no steering is applied.
	assert.Equal(t, 1.2, kin.Rotation)
}

func TestStep_DeadZoneSnapsToZero(t *testing.T) {
	cfg := DefaultConfig()
	kin := &Kinematics{RotationalVelocity: 3}

	// A steering residue below the dead-zone counts as released.
	Step(kin, &ControlState{TurnLeft: 5e-5}, cfg, tickDT)
	assert.Equal(t, 0.0, kin.RotationalVelocity)
}

func TestStep_RotationStaysNormalized(t *testing.T) {
	cfg := DefaultConfig()

	for name, controls := range map[string]*ControlState{
		"left":  {TurnLeft: 1},
		"right": {TurnRight: 1},
	} {
		kin := &Kinematics{}
		for i := 0; i < 600; i++ {
			Step(kin, controls, cfg, tickDT)
			require.GreaterOrEqual(t, kin.Rotation, 0.0, "%s tick %d", name, i)
			require.Less(t, kin.Rotation, 2*math.Pi, "%s tick %d", name, i)
		}
	}
}

func TestStep_ControlsAreClampedNotTrusted(t *testing.T) {
	cfg := DefaultConfig()

	// Oversized inputs behave exactly like 1.
	wild := &Kinematics{}
	tame := &Kinematics{}
	for i := 0; i < 30; i++ {
		Step(wild, &ControlState{AccelForward: 42, TurnLeft: 17}, cfg, tickDT)
		Step(tame, &ControlState{AccelForward: 1, TurnLeft: 1}, cfg, tickDT)
	}
	assert.Equal(t, *tame, *wild)

	// Negative inputs clamp to 0.
	kin := &Kinematics{}
	Step(kin, &ControlState{AccelForward: -3, TurnRight: -1}, cfg, tickDT)
	assert.Equal(t, Kinematics{}, *kin)
}

// TestStep_DriftEdges pins the literal project-then-lerp blend at its edge
// values: 0 is full grip (no sideways velocity survives), 1 keeps the raw
// velocity direction and only friction scales it.
func TestStep_DriftEdges(t *testing.T) {
	lateral := geom.Vec2{X: 10, Y: 25} // heading is +x, so Y is all slide

	grip := DefaultConfig()
	grip.DriftFactor = 0
	kin := &Kinematics{Velocity: lateral}
	Step(kin, &ControlState{}, grip, tickDT)
	assert.InDelta(t, lateral.X*grip.Friction, kin.Velocity.X, 1e-12)
	assert.Equal(t, 0.0, kin.Velocity.Y)

	slide := DefaultConfig()
	slide.DriftFactor = 1
	kin = &Kinematics{Velocity: lateral}
	Step(kin, &ControlState{}, slide, tickDT)
	assert.InDelta(t, lateral.X*slide.Friction, kin.Velocity.X, 1e-12)
	assert.InDelta(t, lateral.Y*slide.Friction, kin.Velocity.Y, 1e-12)
}

// TestStep_Deterministic runs the same input sequence twice and demands
// bit-identical state.
func TestStep_Deterministic(t *testing.T) {
	cfg := DefaultConfig()

	run := func() Kinematics {
		kin := Kinematics{}
		for i := 0; i < 240; i++ {
			controls := ControlState{
				AccelForward: float64(i%3) / 2,
				TurnLeft:     float64(i % 2),
				TurnRight:    float64((i / 7) % 2),
			}
			Step(&kin, &controls, cfg, tickDT)
		}
		return kin
	}

	assert.Equal(t, run(), run())
}
