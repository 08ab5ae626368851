package scenes

import (
	"testing"

	"github.com/automoto/hoh/assets"
	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/automoto/hoh/movement"
	"github.com/automoto/hoh/tags"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPopulate_EmbeddedScene(t *testing.T) {
	t.Cleanup(cfg.Reset)
	scene, err := assets.NewSceneLoader().LoadScene(cfg.Scene.Path)
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	logger := zerolog.Nop()
	character, err := populate(e, scene, nil, &logger)
	require.NoError(t, err)

	cx, cy := components.Object.Get(character).Center()
	assert.Equal(t, 320.0, cx)
	assert.Equal(t, 180.0, cy)
	assert.Equal(t, "Character", components.Character.Get(character).Name)

	walls := 0
	tags.Wall.Each(e.World, func(*donburi.Entry) { walls++ })
	assert.Equal(t, len(scene.Walls), walls)

	_, ok := components.Space.First(e.World)
	assert.True(t, ok)
}

func TestPopulate_MissingCharacter(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Character.Name = "Hero"
	scene, err := assets.NewSceneLoader().LoadScene(cfg.Scene.Path)
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	logger := zerolog.Nop()
	_, err = populate(e, scene, nil, &logger)

	assert.ErrorIs(t, err, assets.ErrEntityNotFound)
}

func TestSheetRows(t *testing.T) {
	tests := []struct {
		name    string
		frames  movement.FrameTable
		columns int
		want    int
	}{
		{"default table", movement.DefaultFrames(), 4, 4},
		{"index past the default sheet", movement.FrameTable{movement.Up: {20}}, 4, 6},
		{"single row", movement.FrameTable{movement.Left: {0, 1, 2}}, 4, 1},
		{"empty table", movement.FrameTable{}, 4, 1},
		{"wide sheet", movement.DefaultFrames(), 16, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sheetRows(tt.frames, tt.columns))
		})
	}
}
