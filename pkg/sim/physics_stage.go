package sim

import (
	"github.com/golangdaddy/trackdrift/pkg/entity"
	"github.com/golangdaddy/trackdrift/pkg/physics"
)

// PhysicsStage integrates every car's kinematics from its current controls.
// It must run after the input stage within the same tick so it never reads
// stale controls.
type PhysicsStage struct {
	cfg *physics.Config
}

// NewPhysicsStage creates the integration stage sharing the given read-only
// physics config across all cars.
func NewPhysicsStage(cfg *physics.Config) *PhysicsStage {
	return &PhysicsStage{cfg: cfg}
}

func (s *PhysicsStage) Name() string { return "physics" }

func (s *PhysicsStage) Tick(cars *entity.Registry, dt float64) {
	for _, car := range cars.Cars() {
		physics.Step(&car.Kinematics, &car.Controls, s.cfg, dt)
	}
}
