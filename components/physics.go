package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData holds the own speed and tuning of a dynamic body. The body's
// velocity for a tick is the own speed plus the influence it stands on.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64

	Gravity      float64
	Friction     float64
	MaxSpeed     float64
	MaxFallSpeed float64
	WalkSpeed    float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
