package factory

import (
	"github.com/automoto/hoh/archetypes"
	"github.com/automoto/hoh/assets/animations"
	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/automoto/hoh/movement"
	"github.com/automoto/hoh/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns the controllable character centered on (x, y).
// sheet may be nil when nothing will be drawn.
func CreateCharacter(ecs *ecs.ECS, name string, x, y float64, sheet *ebiten.Image, logger *zerolog.Logger) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	w := float64(cfg.Character.CollisionWidth)
	h := float64(cfg.Character.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	frames := cfg.Character.Frames.Clone()
	idle, _ := frames.FirstFrame(movement.Down)
	components.Animation.Set(character, GenerateAnimation(sheet, idle))
	components.Physics.SetValue(character, components.PhysicsData{})

	controller := movement.NewController(
		&inputKeys{world: ecs.World},
		&entryAnimator{entry: character},
		&entryBody{entry: character},
		movement.Settings{
			Speed:        cfg.Character.Speed,
			AnimationFPS: cfg.Character.AnimationFPS,
			Frames:       frames,
			Logger:       logger,
		},
	)
	components.Character.SetValue(character, components.CharacterData{
		Name:       name,
		Controller: controller,
	})

	return character
}

// GenerateAnimation builds the sprite player for a sheet laid out by the
// character config, starting stopped on sheet index idle.
func GenerateAnimation(sheet *ebiten.Image, idle int) *components.AnimationData {
	return &components.AnimationData{
		Animation:    animations.NewSpriteAnimation(idle),
		Sheet:        sheet,
		CachedFrames: make(map[int]*ebiten.Image),
		FrameWidth:   cfg.Character.FrameWidth,
		FrameHeight:  cfg.Character.FrameHeight,
		Columns:      cfg.Character.SheetColumns,
	}
}
