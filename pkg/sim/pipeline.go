// Package sim drives the fixed-step simulation tick. Stages form an
// explicit ordered list invoked by the pipeline, so the input -> physics
// ordering the simulation depends on is spelled out at construction time
// rather than discovered.
package sim

import "github.com/golangdaddy/trackdrift/pkg/entity"

// Stage is one phase of the fixed simulation tick. Stages run sequentially
// on a single goroutine; a stage may freely mutate the cars it is
// responsible for.
type Stage interface {
	// Name identifies the stage in diagnostics.
	Name() string
	// Tick runs the stage once over the registry with the fixed time delta
	// in seconds.
	Tick(cars *entity.Registry, dt float64)
}

// StageFunc adapts a plain function to the Stage interface.
type StageFunc struct {
	StageName string
	Fn        func(cars *entity.Registry, dt float64)
}

func (s StageFunc) Name() string { return s.StageName }

func (s StageFunc) Tick(cars *entity.Registry, dt float64) { s.Fn(cars, dt) }

// Pipeline runs its stages in registration order, once each per tick.
type Pipeline struct {
	cars   *entity.Registry
	stages []Stage
}

// NewPipeline creates a tick driver over the given registry. Stage order is
// the order given here and never changes.
func NewPipeline(cars *entity.Registry, stages ...Stage) *Pipeline {
	return &Pipeline{cars: cars, stages: stages}
}

// Tick runs one fixed simulation step: every stage, in order, over every
// car. dt is the fixed delta supplied by the host clock.
func (p *Pipeline) Tick(dt float64) {
	for _, stage := range p.stages {
		stage.Tick(p.cars, dt)
	}
}

// Stages returns the configured stage list in execution order.
func (p *Pipeline) Stages() []Stage {
	return p.stages
}
