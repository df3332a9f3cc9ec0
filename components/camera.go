package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position  math.Vec2      // Top-left corner of the viewport in world pixels
	Target    donburi.Entity // Followed entity, checked with World.Valid before use
	Smoothing float64
	Viewport  math.Vec2 // Width and height in pixels
}

var Camera = donburi.NewComponentType[CameraData]()
