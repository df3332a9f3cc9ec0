package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/level"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space covering the whole map.
func CreateSpace(ecs *ecs.ECS, m *level.Map) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cell := cfg.Map.SpaceCellSize
	if cell <= 0 {
		cell = m.TileWidth
	}
	spaceData := resolv.NewSpace(m.Width, m.Height, cell, cell)
	components.Space.Set(space, spaceData)
	return space
}
