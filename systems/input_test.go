package systems

import (
	"testing"

	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeDevices struct {
	keys    map[ebiten.Key]bool
	buttons map[ebiten.StandardGamepadButton]bool
}

func (f fakeDevices) keyPressed(k ebiten.Key) bool { return f.keys[k] }

func (f fakeDevices) buttonPressed(b ebiten.StandardGamepadButton) bool { return f.buttons[b] }

func TestPollInput_Keyboard(t *testing.T) {
	t.Cleanup(cfg.Reset)
	input := &components.InputData{}

	pollInput(input, fakeDevices{keys: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true}})

	assert.True(t, input.Current[cfg.ActionMoveLeft])
	assert.False(t, input.Current[cfg.ActionMoveRight])
	assert.Equal(t, components.InputKeyboard, input.LastInputMethod)
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionMoveLeft))

	pollInput(input, fakeDevices{})

	assert.False(t, input.Current[cfg.ActionMoveLeft])
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionMoveLeft))
}

func TestPollInput_Gamepad(t *testing.T) {
	t.Cleanup(cfg.Reset)
	input := &components.InputData{}

	pollInput(input, fakeDevices{buttons: map[ebiten.StandardGamepadButton]bool{
		ebiten.StandardGamepadButtonLeftBottom: true,
	}})

	assert.True(t, input.Current[cfg.ActionMoveDown])
	assert.Equal(t, components.InputGamepad, input.LastInputMethod)
}

func TestPollInput_CustomBinding(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Input.Bindings[cfg.ActionMoveUp] = cfg.InputBinding{Keys: []ebiten.Key{ebiten.KeyW}}
	input := &components.InputData{}

	pollInput(input, fakeDevices{keys: map[ebiten.Key]bool{ebiten.KeyArrowUp: true}})
	assert.False(t, input.Current[cfg.ActionMoveUp])

	pollInput(input, fakeDevices{keys: map[ebiten.Key]bool{ebiten.KeyW: true}})
	assert.True(t, input.Current[cfg.ActionMoveUp])
}
