package systems

import (
	"testing"

	cfg "github.com/automoto/hoh/config"
	"github.com/stretchr/testify/assert"
)

func TestUpdateSettings_ToggleDebug(t *testing.T) {
	e := newTestWorld(t)
	cfg.Debug.Overlay = true

	assert.True(t, GetOrCreateSettings(e).Debug)

	hold(e, cfg.ActionToggleDebug)
	UpdateSettings(e)
	assert.False(t, GetOrCreateSettings(e).Debug)

	// Held key does not toggle again.
	hold(e, cfg.ActionToggleDebug)
	UpdateSettings(e)
	assert.False(t, GetOrCreateSettings(e).Debug)
}

func TestCharacterDebugLines(t *testing.T) {
	e := newTestWorld(t)
	character := spawnCharacter(e, 50, 50)

	hold(e, cfg.ActionMoveDown)
	tick(e)

	lines := characterDebugLines(character)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "dir=down")
	assert.Contains(t, lines[1], "vel=(")
	assert.Contains(t, lines[2], "playing=true")
}
