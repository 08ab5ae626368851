package systems

import (
	"github.com/automoto/hoh/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters runs every character controller once.
func UpdateCharacters(ecs *ecs.ECS) {
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		character := components.Character.Get(e)
		if character.Controller == nil {
			return
		}
		character.Direction = character.Controller.Update()
	})
}
