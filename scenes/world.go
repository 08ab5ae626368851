package scenes

import (
	"fmt"

	"github.com/automoto/hoh/assets"
	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/automoto/hoh/logging"
	"github.com/automoto/hoh/movement"
	"github.com/automoto/hoh/systems"
	"github.com/automoto/hoh/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision grid cell size in pixels.
const cellSize = 16

// CharacterScene is the single playable scene: walls from the map and one
// controllable character.
type CharacterScene struct {
	ecs *ecs.ECS
}

// NewCharacterScene loads the configured map and sprite sheet and spawns the
// character. Any error is a startup precondition failure.
func NewCharacterScene() (*CharacterScene, error) {
	logger := logging.For("scene")

	scene, err := assets.NewSceneLoader().LoadScene(cfg.Scene.Path)
	if err != nil {
		return nil, err
	}

	sheet, err := loadCharacterSheet()
	if err != nil {
		return nil, err
	}

	e := newECS()
	if _, err := populate(e, scene, sheet, &logger); err != nil {
		return nil, err
	}

	logger.Info().
		Str("map", scene.Name).
		Int("walls", len(scene.Walls)).
		Int("width", cfg.C.Width).
		Int("height", cfg.C.Height).
		Msg("scene ready")

	return &CharacterScene{ecs: e}, nil
}

func (cs *CharacterScene) Update() {
	cs.ecs.Update()
}

func (cs *CharacterScene) Draw(screen *ebiten.Image) {
	cs.ecs.Draw(screen)
}

func newECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacters))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))

	// Systems that run even when paused
	e.AddSystem(systems.UpdateSettings)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawScene)
	e.AddRenderer(cfg.Default, systems.DrawAnimated)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	return e
}

// populate creates the collision space, walls, and the character at the
// entity named by cfg.Character.Name.
func populate(e *ecs.ECS, scene *assets.Scene, sheet *ebiten.Image, logger *zerolog.Logger) (*donburi.Entry, error) {
	spawn, err := scene.Entity(cfg.Character.Name)
	if err != nil {
		return nil, err
	}

	// The space covers the larger of the map and the backbuffer.
	width := max(scene.Width, cfg.C.Width)
	height := max(scene.Height, cfg.C.Height)
	factory.CreateSpace(e, width, height, cellSize, cellSize)

	for _, wall := range scene.Walls {
		factory.CreateWall(e, wall.X, wall.Y, wall.Width, wall.Height)
	}

	character := factory.CreateCharacter(e, spawn.Name, spawn.X, spawn.Y, sheet, logger)
	obj := components.Object.Get(character)
	logger.Debug().Str("entity", spawn.Name).Float64("x", obj.X).Float64("y", obj.Y).Msg("character spawned")

	return character, nil
}

func loadCharacterSheet() (*ebiten.Image, error) {
	c := cfg.Character
	if c.SpriteSheet == "" {
		rows := sheetRows(c.Frames, c.SheetColumns)
		return assets.PlaceholderSheet(c.FrameWidth, c.FrameHeight, c.SheetColumns, rows), nil
	}

	sheet, err := assets.NewSheetLoader().LoadSheet(c.SpriteSheet)
	if err != nil {
		return nil, fmt.Errorf("character sprite sheet: %w", err)
	}
	return sheet, nil
}

// sheetRows is how many rows a sheet needs to hold every index in frames.
func sheetRows(frames movement.FrameTable, columns int) int {
	rows := 1
	for _, seq := range frames {
		for _, f := range seq {
			rows = max(rows, f/columns+1)
		}
	}
	return rows
}
