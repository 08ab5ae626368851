package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/hoh/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "hoh"

// Load resets the globals to their defaults and overlays hoh.yaml from
// configDir plus HOH_* environment variables. A missing file is not an error.
func Load(configDir string) error {
	Reset()
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("HOH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := apply(); err != nil {
		return err
	}
	return Validate()
}

// Used returns the config file that was read, or "" when defaults were used.
func Used() string {
	return viper.ConfigFileUsed()
}

func setDefaults() {
	viper.SetDefault("width", C.Width)
	viper.SetDefault("height", C.Height)
	viper.SetDefault("tps", C.TPS)

	viper.SetDefault("character.name", Character.Name)
	viper.SetDefault("character.speed", Character.Speed)
	viper.SetDefault("character.animationFPS", Character.AnimationFPS)
	for _, d := range movement.Directions {
		viper.SetDefault("character.frames."+d.String(), Character.Frames.Frames(d))
	}
	viper.SetDefault("character.spriteSheet", Character.SpriteSheet)
	viper.SetDefault("character.frameWidth", Character.FrameWidth)
	viper.SetDefault("character.frameHeight", Character.FrameHeight)
	viper.SetDefault("character.sheetColumns", Character.SheetColumns)
	viper.SetDefault("character.collisionWidth", Character.CollisionWidth)
	viper.SetDefault("character.collisionHeight", Character.CollisionHeight)

	viper.SetDefault("scene.path", Scene.Path)
	viper.SetDefault("log.level", Log.Level)
	viper.SetDefault("debug.overlay", Debug.Overlay)
}

func apply() error {
	C.Width = viper.GetInt("width")
	C.Height = viper.GetInt("height")
	C.TPS = viper.GetInt("tps")

	Character.Name = viper.GetString("character.name")
	Character.Speed = viper.GetFloat64("character.speed")
	Character.AnimationFPS = viper.GetFloat64("character.animationFPS")
	frames := make(movement.FrameTable, len(movement.Directions))
	for _, d := range movement.Directions {
		frames[d] = viper.GetIntSlice("character.frames." + d.String())
	}
	Character.Frames = frames
	Character.SpriteSheet = viper.GetString("character.spriteSheet")
	Character.FrameWidth = viper.GetInt("character.frameWidth")
	Character.FrameHeight = viper.GetInt("character.frameHeight")
	Character.SheetColumns = viper.GetInt("character.sheetColumns")
	Character.CollisionWidth = viper.GetInt("character.collisionWidth")
	Character.CollisionHeight = viper.GetInt("character.collisionHeight")

	Scene.Path = viper.GetString("scene.path")
	Log.Level = viper.GetString("log.level")
	Debug.Overlay = viper.GetBool("debug.overlay")

	for action, name := range actionNames {
		names := viper.GetStringSlice("input." + name)
		if len(names) == 0 {
			continue
		}
		keys, err := parseKeys(names)
		if err != nil {
			return fmt.Errorf("input.%s: %w", name, err)
		}
		binding := Input.Bindings[action]
		binding.Keys = keys
		Input.Bindings[action] = binding
	}
	return nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, n := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(n)); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Validate rejects values the game can't start with.
func Validate() error {
	switch {
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("invalid screen size %dx%d", C.Width, C.Height)
	case C.TPS <= 0:
		return fmt.Errorf("invalid tps %d", C.TPS)
	case Character.Speed < 0:
		return fmt.Errorf("invalid character speed %g", Character.Speed)
	case Character.AnimationFPS <= 0:
		return fmt.Errorf("invalid animation fps %g", Character.AnimationFPS)
	case Character.FrameWidth <= 0 || Character.FrameHeight <= 0 || Character.SheetColumns <= 0:
		return fmt.Errorf("invalid sprite sheet layout %dx%d, %d columns",
			Character.FrameWidth, Character.FrameHeight, Character.SheetColumns)
	case Character.Name == "":
		return errors.New("character name is empty")
	}
	if err := Character.Frames.Validate(); err != nil {
		return fmt.Errorf("character frames: %w", err)
	}
	return nil
}
