// Package view derives render transforms from simulation state. It is the
// read-only bridge between track-space kinematics and whatever the host
// draws with them.
package view

import (
	"github.com/golangdaddy/trackdrift/pkg/geom"
	"github.com/golangdaddy/trackdrift/pkg/physics"
	"github.com/golangdaddy/trackdrift/pkg/track"
)

// Transform is a renderable placement in world/screen space: where to draw,
// how much to rotate about the axis perpendicular to the track plane, and
// the uniform scale to apply to the drawn shape.
type Transform struct {
	Translation geom.Vec2
	Rotation    float64
	Scale       float64
}

// Project computes the render transform for one car from its current
// kinematics and the shared track config. Pure function of its inputs.
func Project(kin *physics.Kinematics, cfg *track.Config) Transform {
	return Transform{
		Translation: cfg.TrackToWorld(kin.Position),
		Rotation:    kin.Rotation,
		Scale:       cfg.Scale,
	}
}
