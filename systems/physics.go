package systems

import (
	"math"

	"github.com/automoto/hoh/components"
	"github.com/automoto/hoh/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Velocity components smaller than this are trig residue, not motion.
const velocityEpsilon = 1e-9

// UpdatePhysics moves bodies by their velocity for one tick, stopping at solids.
// Velocity is +Y up; the screen is +Y down.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.Blocked = false
		vx, vy := snap(physics.Velocity.X), snap(physics.Velocity.Y)
		if vx == 0 && vy == 0 {
			return
		}

		obj := components.Object.Get(e).Object
		dx := vx * dt
		dy := -vy * dt

		if dx != 0 {
			allowed := resolveAxis(obj, dx, 0)
			physics.Blocked = physics.Blocked || allowed != dx
			obj.X += allowed
		}
		if dy != 0 {
			allowed := resolveAxis(obj, 0, dy)
			physics.Blocked = physics.Blocked || allowed != dy
			obj.Y += allowed
		}
	})
}

func snap(v float64) float64 {
	if math.Abs(v) < velocityEpsilon {
		return 0
	}
	return v
}

// resolveAxis returns how far obj may move along one axis before touching a
// solid. Only solids overlapping obj on the other axis can block it.
func resolveAxis(obj *resolv.Object, dx, dy float64) float64 {
	allowed := dx + dy
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return allowed
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		var contact float64
		if dx != 0 {
			if obj.Y >= solid.Y+solid.H || obj.Y+obj.H <= solid.Y {
				continue
			}
			contact = check.ContactWithObject(solid).X()
		} else {
			if obj.X >= solid.X+solid.W || obj.X+obj.W <= solid.X {
				continue
			}
			contact = check.ContactWithObject(solid).Y()
		}

		if allowed > 0 && contact >= 0 && contact < allowed {
			allowed = contact
		} else if allowed < 0 && contact <= 0 && contact > allowed {
			allowed = contact
		}
	}
	return allowed
}
