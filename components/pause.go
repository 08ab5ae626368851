package components

import "github.com/yohamta/donburi"

// PauseData gates gameplay systems; the character only updates while running.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
