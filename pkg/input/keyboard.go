// Package input maps raw key state into per-car control state. The mapping
// is one-way and side-effect free: the physics core only ever sees
// ControlState, never the device.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/trackdrift/pkg/entity"
	"github.com/golangdaddy/trackdrift/pkg/physics"
)

// KeySource reports whether a key is currently held. The real source is the
// ebiten keyboard; tests substitute a fake.
type KeySource interface {
	Pressed(key ebiten.Key) bool
}

// EbitenKeys polls the live ebiten keyboard.
type EbitenKeys struct{}

func (EbitenKeys) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// KeyboardStage samples the key source once per tick and overwrites the
// ControlState of every input-accepting car with it. Cars that do not
// accept input keep whatever their driver last wrote.
//
// Bindings are WASD with the arrow keys as aliases: held maps to 1, not
// held to 0.
type KeyboardStage struct {
	keys KeySource
}

// NewKeyboardStage creates the input mapping stage reading from the given
// key source.
func NewKeyboardStage(keys KeySource) *KeyboardStage {
	return &KeyboardStage{keys: keys}
}

func (s *KeyboardStage) Name() string { return "input" }

func (s *KeyboardStage) Tick(cars *entity.Registry, dt float64) {
	controls := physics.ControlState{
		AccelForward:  buttonAxis(s.keys, ebiten.KeyW, ebiten.KeyArrowUp),
		AccelBackward: buttonAxis(s.keys, ebiten.KeyS, ebiten.KeyArrowDown),
		TurnLeft:      buttonAxis(s.keys, ebiten.KeyA, ebiten.KeyArrowLeft),
		TurnRight:     buttonAxis(s.keys, ebiten.KeyD, ebiten.KeyArrowRight),
	}
	for _, car := range cars.Cars() {
		if car.AcceptsInput {
			car.Controls = controls
		}
	}
}

// buttonAxis converts "any of these keys held" into the 0/1 control value
// the integrator expects.
func buttonAxis(keys KeySource, bindings ...ebiten.Key) float64 {
	for _, key := range bindings {
		if keys.Pressed(key) {
			return 1
		}
	}
	return 0
}
