package components

import "github.com/yohamta/donburi"

// LandmarkData is a named point of interest placed in the map's object layer.
type LandmarkData struct {
	Name     string
	Occupied bool // Player body overlaps the landmark this tick
	Visits   int
}

var Landmark = donburi.NewComponentType[LandmarkData]()
