package systems

import (
	"github.com/automoto/hoh/assets"
	"github.com/automoto/hoh/components"
	cfg "github.com/automoto/hoh/config"
	"github.com/automoto/hoh/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawScene clears the backbuffer and draws walls.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.Grey, false)
	})
}

// DrawAnimated renders entities with an Animation component at their current
// sheet index, centered on their collision box.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		if animData.Sheet == nil || animData.Animation == nil {
			return
		}

		img := frameImage(animData, animData.Animation.Frame())
		if img == nil {
			return
		}

		cx, cy := components.Object.Get(e).Center()

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight)/2)
		drawOp.GeoM.Translate(cx, cy)
		screen.DrawImage(img, drawOp)
	})
}

// frameImage returns the cached sub-image for a sheet index, slicing on first use.
func frameImage(animData *components.AnimationData, frame int) *ebiten.Image {
	if img, ok := animData.CachedFrames[frame]; ok {
		return img
	}

	srcRect := assets.FrameRect(frame, animData.FrameWidth, animData.FrameHeight, animData.Columns)
	if !srcRect.In(animData.Sheet.Bounds()) {
		return nil
	}

	img := animData.Sheet.SubImage(srcRect).(*ebiten.Image)
	animData.CachedFrames[frame] = img
	return img
}
