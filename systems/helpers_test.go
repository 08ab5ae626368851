package systems

import (
	"testing"

	cfg "github.com/automoto/hoh/config"
	"github.com/automoto/hoh/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld returns an ECS with a collision space and the input singleton.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	getOrCreateInput(e)
	return e
}

// hold replaces the current input with exactly the given actions.
func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func spawnCharacter(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreateCharacter(e, "Character", x, y, nil, nil)
}

// tick runs the gameplay systems in scene order.
func tick(e *ecs.ECS) {
	UpdatePause(e)
	WithGameplayChecks(UpdateCharacters)(e)
	WithGameplayChecks(UpdateAnimations)(e)
	WithGameplayChecks(UpdatePhysics)(e)
	UpdateObjects(e)
	UpdateSettings(e)
}

