package systems

import (
	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the debug overlay.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Debug().Bool("debug", settings.Debug).Msg("debug overlay toggled")
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from config.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
