// Package config loads the host configuration from an optional YAML file
// and validates it before the simulation sees any of it. The physics core
// assumes these invariants hold, so violations are rejected here, at load
// time.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/golangdaddy/trackdrift/pkg/geom"
	"github.com/golangdaddy/trackdrift/pkg/physics"
	"github.com/golangdaddy/trackdrift/pkg/track"
)

// Window configures the host window.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Track configures the logical track dimensions.
type Track struct {
	LogicalWidth  float64 `yaml:"logical_width"`
	LogicalHeight float64 `yaml:"logical_height"`
}

// Config is the full host configuration.
type Config struct {
	Window  Window         `yaml:"window"`
	Track   Track          `yaml:"track"`
	Physics physics.Config `yaml:"physics"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "Trackdrift",
			Width:  1024,
			Height: 600,
		},
		Track: Track{
			LogicalWidth:  100,
			LogicalHeight: 100,
		},
		Physics: *physics.DefaultConfig(),
	}
}

// Load reads the YAML config at path, overlaying it on the defaults. A
// missing file is not an error: the defaults are returned as-is. Any value
// that breaks a simulation invariant fails the load.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every invariant the simulation relies on.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Track.LogicalWidth <= 0 || c.Track.LogicalHeight <= 0 {
		return fmt.Errorf("track logical size must be positive, got %gx%g", c.Track.LogicalWidth, c.Track.LogicalHeight)
	}

	p := &c.Physics
	if p.RotationalAcceleration < 0 || p.MaxRotationalVelocity < 0 ||
		p.ForwardAcceleration < 0 || p.MaxForwardVelocity < 0 {
		return fmt.Errorf("physics constants must be non-negative")
	}
	if p.Friction <= 0 || p.Friction > 1 {
		return fmt.Errorf("friction must be in (0, 1], got %g", p.Friction)
	}
	if p.DriftFactor < 0 || p.DriftFactor > 1 {
		return fmt.Errorf("drift factor must be in [0, 1], got %g", p.DriftFactor)
	}
	return nil
}

// TrackConfig builds the runtime track config from the loaded dimensions.
func (c *Config) TrackConfig() *track.Config {
	return &track.Config{
		LogicalSize: geom.Vec2{X: c.Track.LogicalWidth, Y: c.Track.LogicalHeight},
		Scale:       1,
	}
}
