package config

import (
	"image/color"

	"github.com/automoto/hoh/movement"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// CharacterConfig contains the controllable character's tunables
type CharacterConfig struct {
	Name string // Scene entity to spawn the character at

	// Movement
	Speed float64 // units per second

	// Animation
	AnimationFPS float64
	Frames       movement.FrameTable

	// Sprite sheet
	SpriteSheet  string // PNG path; empty uses the built-in placeholder sheet
	FrameWidth   int
	FrameHeight  int
	SheetColumns int

	// Collision box, centered on the sprite
	CollisionWidth  int
	CollisionHeight int
}

// SceneConfig selects the Tiled map loaded at startup
type SceneConfig struct {
	Path string // path inside the embedded levels directory
}

// LogConfig contains logging options
type LogConfig struct {
	Level string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Start with the debug overlay enabled
}

// Global configuration instances
var C *Config
var Character CharacterConfig
var Scene SceneConfig
var Log LogConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Character = CharacterConfig{
		Name:            "Character",
		Speed:           movement.DefaultSpeed,
		AnimationFPS:    movement.DefaultAnimationFPS,
		Frames:          movement.DefaultFrames(),
		FrameWidth:      32,
		FrameHeight:     32,
		SheetColumns:    4,
		CollisionWidth:  20,
		CollisionHeight: 28,
	}

	Scene = SceneConfig{
		Path: "levels/scene.tmx",
	}

	Log = LogConfig{
		Level: "info",
	}

	Debug = DebugConfig{}

	Input = defaultInput()
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Background   = color.RGBA{R: 34, G: 40, B: 49, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)
