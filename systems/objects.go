package systems

import (
	"github.com/automoto/hoh/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects commits moved collision objects to the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
