package components

import (
	"github.com/automoto/hoh/movement"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Name       string
	Controller *movement.Controller
	Direction  movement.Direction // sampled on the last tick
}

var Character = donburi.NewComponentType[CharacterData]()
