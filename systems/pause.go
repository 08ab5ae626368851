package systems

import (
	"image/color"

	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/automoto/hoh/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdatePause toggles pause.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		log.Debug().Bool("paused", pause.IsPaused).Msg("pause toggled")
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := fonts.Title.Get()
	drawCentered(screen, "PAUSED", title, width, height/2, cfg.White)

	input := getOrCreateInput(ecs)
	drawCentered(screen, pauseHint(input.LastInputMethod), fonts.Small.Get(), width, height-12, cfg.White)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, (width-w)/2, y, c)
}

// pauseHint returns the resume hint for the active input device
func pauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Start: Resume"
	}
	return "Esc/P: Resume   F1: Debug"
}

// WithGameplayChecks wraps a system to skip execution when paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
