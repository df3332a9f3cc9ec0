package systems

import (
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	goal, ok := cameraGoal(e.World, camera)
	if !ok {
		return // target gone, hold position
	}

	camera.Position = gamemath.Follow(camera.Position, goal, gamemath.FollowOptions{
		Smoothing:     camera.Smoothing,
		SnapThreshold: config.Camera.SnapThreshold,
		DeadZoneX:     config.Camera.DeadZoneX,
		DeadZoneY:     config.Camera.DeadZoneY,
	})
	clampCamera(e.World, camera)
}

// ResetCamera snaps the camera onto its target without smoothing.
func ResetCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if goal, ok := cameraGoal(e.World, camera); ok {
		camera.Position = goal
		clampCamera(e.World, camera)
	}
}

// cameraGoal is the position that centres the target's sprite anchor.
func cameraGoal(w donburi.World, camera *components.CameraData) (math.Vec2, bool) {
	if !w.Valid(camera.Target) {
		return math.Vec2{}, false
	}
	target := w.Entry(camera.Target)
	if !target.HasComponent(components.Object) {
		return math.Vec2{}, false
	}
	anchor := components.Object.Get(target).Anchor()
	return gamemath.CameraTarget(anchor, camera.Viewport.X, camera.Viewport.Y), true
}

func clampCamera(w donburi.World, camera *components.CameraData) {
	if !config.Camera.ClampToWorld {
		return
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	m := components.Level.Get(levelEntry).Map
	if m == nil {
		return
	}
	camera.Position = gamemath.ClampToBounds(camera.Position,
		camera.Viewport.X, camera.Viewport.Y,
		float64(m.Width), float64(m.Height))
}
