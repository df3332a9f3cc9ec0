package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawAnimated renders entities with an Animation component at their sprite
// anchor, bottom-centre by default.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	camX, camY := math.Round(camera.Position.X), math.Round(camera.Position.Y)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		animData := components.Animation.Get(e)
		frame := animData.Frame()

		if animData.Sheet == nil || frame < 0 {
			// Fallback to the collision box if there is nothing to draw
			vector.FillRect(screen, float32(o.X-camX), float32(o.Y-camY), float32(o.W), float32(o.H), color.RGBA{R: 0x4a, G: 0x8c, B: 0xd8, A: 0xff}, false)
			return
		}

		w := float64(animData.Sheet.FrameWidth)
		h := float64(animData.Sheet.FrameHeight)
		anchor := o.Anchor()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-w*cfg.Player.AnchorX, -h*cfg.Player.AnchorY)
		drawOp.GeoM.Translate(math.Round(anchor.X)-camX, math.Round(anchor.Y)-camY)

		screen.DrawImage(animData.Sheet.Frame(frame), drawOp)
	})
}
