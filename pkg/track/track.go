package track

import "github.com/golangdaddy/trackdrift/pkg/geom"

// Config holds the logical dimensions of the track and the scale factor
// used to map track coordinates into world/screen coordinates.
//
// LogicalSize is fixed at startup; Scale is recomputed once per frame from
// the current window size (see ComputeScale) and must never be touched by
// the physics step.
type Config struct {
	LogicalSize geom.Vec2
	Scale       float64
}

// NewConfig returns a track config with the default 100x100 logical size
// and a neutral scale of 1.
func NewConfig() *Config {
	return &Config{
		LogicalSize: geom.Vec2{X: 100, Y: 100},
		Scale:       1,
	}
}

// TrackToWorld maps a track-space position to world space. The track's
// center maps to the world origin and coordinates stretch uniformly by
// Scale.
func (c *Config) TrackToWorld(p geom.Vec2) geom.Vec2 {
	return p.Sub(c.LogicalSize.Scale(0.5)).Scale(c.Scale)
}

// WorldToTrack is the exact inverse of TrackToWorld.
func (c *Config) WorldToTrack(p geom.Vec2) geom.Vec2 {
	return p.Scale(1 / c.Scale).Add(c.LogicalSize.Scale(0.5))
}

// ComputeScale sets Scale to the largest uniform factor that keeps the
// whole logical track inside a window of the given size on both axes
// (letterbox fit). Called once per frame by the host before projection.
func (c *Config) ComputeScale(windowWidth, windowHeight float64) {
	sx := windowWidth / c.LogicalSize.X
	sy := windowHeight / c.LogicalSize.Y
	if sx < sy {
		c.Scale = sx
	} else {
		c.Scale = sy
	}
}
