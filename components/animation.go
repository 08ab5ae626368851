package components

import (
	"github.com/automoto/hoh/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Animation    *animations.SpriteAnimation
	Sheet        *ebiten.Image
	CachedFrames map[int]*ebiten.Image // Pre-calculated subimages keyed by sheet index
	FrameWidth   int
	FrameHeight  int
	Columns      int
}

var Animation = donburi.NewComponentType[AnimationData]()
