package systems

import (
	"math"

	"github.com/automoto/tilewalk/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if len(levelData.Rendered) == 0 {
		return
	}

	// Convert the rendered layers to Ebiten images once
	if levelData.Layers == nil {
		levelData.Layers = make([]*ebiten.Image, len(levelData.Rendered))
		for i, img := range levelData.Rendered {
			levelData.Layers[i] = ebiten.NewImageFromImage(img)
		}
	}

	opts := &ebiten.DrawImageOptions{}
	// Camera positions are rounded to whole pixels so tiles never shimmer.
	opts.GeoM.Translate(-math.Round(camera.Position.X), -math.Round(camera.Position.Y))

	// Base layer first, details on top
	for _, img := range levelData.Layers {
		screen.DrawImage(img, opts)
	}
}
