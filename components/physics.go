package components

import (
	"github.com/automoto/hoh/movement"
	"github.com/yohamta/donburi"
)

// PhysicsData is the character body. Velocity is in controller space
// (+Y up, units per second) as last written by the controller.
type PhysicsData struct {
	Velocity movement.Vec3
	Blocked  bool // movement was cut short by a solid this tick
}

var Physics = donburi.NewComponentType[PhysicsData]()
