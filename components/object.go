package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collision box.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
