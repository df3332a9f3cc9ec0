package factory

import (
	"image"

	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the loaded map, its render groups and the rendered
// layer images of groups.LevelBottom.
func CreateLevel(ecs *ecs.ECS, m *level.Map, groups *level.Groups, rendered []*image.NRGBA) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		Map:      m,
		Groups:   groups,
		Rendered: rendered,
	})
	return entry
}
