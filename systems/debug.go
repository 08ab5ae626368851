package systems

import (
	"fmt"

	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/automoto/hoh/fonts"
	"github.com/automoto/hoh/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Yellow
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Green
			} else if obj.HasTags(tags.ResolvCharacter) {
				c = cfg.Blue
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	face := fonts.Regular.Get()
	y := 14
	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		for _, line := range characterDebugLines(e) {
			text.Draw(screen, line, face, 20, y+16, cfg.White)
			y += 14
		}
	})
	text.Draw(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), face, 20, y+16, cfg.White)
}

// characterDebugLines describes a character's controller, body, and animation.
func characterDebugLines(e *donburi.Entry) []string {
	character := components.Character.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)
	obj := components.Object.Get(e)

	lines := []string{
		fmt.Sprintf("%s dir=%s pos=(%.1f, %.1f)", character.Name, character.Direction, obj.X, obj.Y),
		fmt.Sprintf("vel=(%.1f, %.1f, %.1f) blocked=%t",
			physics.Velocity.X, physics.Velocity.Y, physics.Velocity.Z, physics.Blocked),
	}
	if anim.Animation != nil {
		lines = append(lines, fmt.Sprintf("frame=%d playing=%t", anim.Animation.Frame(), anim.Animation.Playing()))
	}
	return lines
}
