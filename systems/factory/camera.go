package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates a camera that follows target.
func CreateCamera(ecs *ecs.ECS, target donburi.Entity) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Target:    target,
		Smoothing: cfg.Camera.Smoothing,
		Viewport:  math.Vec2{X: float64(cfg.C.Width), Y: float64(cfg.C.Height)},
	})
	return camera
}
