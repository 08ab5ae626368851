package systems

import (
	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateCharacters in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pollInput(input, ebitenDevices{gamepads: gamepadIDs})
}

// devices abstracts the hardware so polling can run without a window.
type devices interface {
	keyPressed(k ebiten.Key) bool
	buttonPressed(b ebiten.StandardGamepadButton) bool
}

type ebitenDevices struct {
	gamepads []ebiten.GamepadID
}

func (d ebitenDevices) keyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (d ebitenDevices) buttonPressed(b ebiten.StandardGamepadButton) bool {
	for _, gpID := range d.gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(gpID) && ebiten.IsStandardGamepadButtonPressed(gpID, b) {
			return true
		}
	}
	return false
}

func pollInput(input *components.InputData, dev devices) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if dev.keyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.StandardGamepadButtons {
			if dev.buttonPressed(btn) {
				input.Current[actionID] = true
				gamepadUsed = true
			}
		}
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
