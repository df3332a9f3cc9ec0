package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Alive     bool
	Animation string // Name of the walk animation selected this tick
	Controls  ControlsData
}

var Player = donburi.NewComponentType[PlayerData]()
