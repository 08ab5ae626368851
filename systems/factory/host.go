package factory

import (
	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/automoto/hoh/movement"
	"github.com/yohamta/donburi"
)

// The controller's host capabilities, backed by ECS components. Entries are
// resolved on every call since component storage can move.

var keyActions = [...]cfg.ActionID{
	movement.KeyLeft:  cfg.ActionMoveLeft,
	movement.KeyRight: cfg.ActionMoveRight,
	movement.KeyUp:    cfg.ActionMoveUp,
	movement.KeyDown:  cfg.ActionMoveDown,
}

// inputKeys reads the Input singleton.
type inputKeys struct {
	world donburi.World
}

func (k *inputKeys) IsKeyDown(key movement.Key) bool {
	entry, ok := components.Input.First(k.world)
	if !ok || int(key) >= len(keyActions) {
		return false
	}
	return components.Input.Get(entry).Current[keyActions[key]]
}

// entryAnimator drives the entity's sprite animation.
type entryAnimator struct {
	entry *donburi.Entry
}

func (a *entryAnimator) Play(frames []int, mode movement.RepeatMode, fps float64) {
	components.Animation.Get(a.entry).Animation.Play(frames, mode, fps)
}

func (a *entryAnimator) Stop() {
	components.Animation.Get(a.entry).Animation.Stop()
}

func (a *entryAnimator) SetFrame(index int) {
	components.Animation.Get(a.entry).Animation.SetFrame(index)
}

// entryBody stores the velocity for the physics system to integrate.
type entryBody struct {
	entry *donburi.Entry
}

func (b *entryBody) SetVelocity(v movement.Vec3) {
	components.Physics.Get(b.entry).Velocity = v
}
