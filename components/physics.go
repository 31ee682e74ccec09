package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds velocity in units per second. Y grows downward.
type PhysicsData struct {
	VelocityX float64
	VelocityY float64
	Gravity   float64
	// Friction slows horizontal velocity toward zero, in units per second squared.
	Friction float64
	OnGround bool
}

// Falling reports whether the body is moving downward.
func (p *PhysicsData) Falling() bool {
	return p.VelocityY > 0
}

var Physics = donburi.NewComponentType[PhysicsData]()
