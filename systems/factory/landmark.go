package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/level"
	"github.com/automoto/tilewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLandmark adds a non-solid trigger area for a placed object. Point
// objects get a one-tile area centred on the point.
func CreateLandmark(ecs *ecs.ECS, o level.Object, tileSize float64) *donburi.Entry {
	landmark := archetypes.Landmark.Spawn(ecs)

	x, y, w, h := o.X, o.Y, o.Width, o.Height
	if w <= 0 || h <= 0 {
		w, h = tileSize, tileSize
		x -= tileSize / 2
		y -= tileSize / 2
	}

	obj := resolv.NewObject(x, y, w, h, tags.ResolvLandmark)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = landmark
	components.Object.SetValue(landmark, components.ObjectData{Object: obj})
	components.Landmark.SetValue(landmark, components.LandmarkData{Name: o.Name})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return landmark
}
