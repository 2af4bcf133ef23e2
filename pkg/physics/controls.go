package physics

// ControlState holds the normalized driving input for one car, overwritten
// every tick by the input stage (or by an AI driver later). Values are
// expected in [0, 1] but are not trusted: the integrator clamps them.
type ControlState struct {
	// TurnLeft and TurnRight are the raw steering inputs.
	TurnLeft  float64
	TurnRight float64
	// AccelForward and AccelBackward are the raw throttle inputs.
	AccelForward  float64
	AccelBackward float64
}
