package factory

import (
	"image"

	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/level"
	"github.com/automoto/tilewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateWalls adds a solid wall for every merged run of collidable tiles.
func CreateWalls(ecs *ecs.ECS, m *level.Map) int {
	rects := m.SolidRects()
	for _, r := range rects {
		createWallRect(ecs, r)
	}
	return len(rects)
}

func createWallRect(ecs *ecs.ECS, r image.Rectangle) *donburi.Entry {
	return CreateWall(ecs, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}
