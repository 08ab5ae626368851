package systems

import (
	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every sprite animation by one tick.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if anim := components.Animation.Get(e); anim.Animation != nil {
			anim.Animation.Update(dt)
		}
	})
}

func tickSeconds() float64 {
	return 1 / float64(cfg.C.TPS)
}
