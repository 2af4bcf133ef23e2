// Package entity keeps track of the car entities in the simulation. Roles
// are a small closed set and lookup is an explicit registry, so "which cars
// receive which stages" is a plain field check rather than a component
// system.
package entity

import "github.com/golangdaddy/trackdrift/pkg/physics"

// ID identifies one car for the lifetime of the registry.
type ID uint64

// Role says what kind of driver a car belongs to.
type Role int

const (
	// RolePlayer marks the car the camera and HUD care about.
	RolePlayer Role = iota
	// RoleNonPlayer marks every other car (scripted or future AI).
	RoleNonPlayer
)

// Car is one registered car entity. It exclusively owns its ControlState
// and Kinematics; nothing outside the input and physics stages writes them.
type Car struct {
	ID   ID
	Role Role
	// AcceptsInput gates the keyboard mapping stage: only cars with this
	// set have their controls overwritten from the input device.
	AcceptsInput bool

	Controls   physics.ControlState
	Kinematics physics.Kinematics
}

// Registry owns all spawned cars in spawn order.
type Registry struct {
	cars   []*Car
	nextID ID
}

// NewRegistry returns an empty car registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Spawn registers a new car with zeroed controls and kinematics: position
// at the track origin, rotation 0, velocities 0.
func (r *Registry) Spawn(role Role, acceptsInput bool) *Car {
	r.nextID++
	car := &Car{
		ID:           r.nextID,
		Role:         role,
		AcceptsInput: acceptsInput,
	}
	r.cars = append(r.cars, car)
	return car
}

// Cars returns all registered cars in spawn order. Callers must not modify
// the slice itself.
func (r *Registry) Cars() []*Car {
	return r.cars
}

// Player returns the first car spawned with RolePlayer, or nil if none
// exists yet.
func (r *Registry) Player() *Car {
	for _, car := range r.cars {
		if car.Role == RolePlayer {
			return car
		}
	}
	return nil
}

// Len returns the number of registered cars.
func (r *Registry) Len() int {
	return len(r.cars)
}
