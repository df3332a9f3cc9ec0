package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/fonts"
	"github.com/automoto/tilewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var debugKeyHeld bool

// UpdateDebugToggle flips the debug overlay when its key goes down.
func UpdateDebugToggle(ecs *ecs.ECS) {
	held := ReadAction(cfg.ActionToggleDebug)
	if held && !debugKeyHeld {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
	}
	debugKeyHeld = held
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	viewX, viewY := camera.Position.X, camera.Position.Y

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if obj.X+obj.W < viewX || obj.X > viewX+width || obj.Y+obj.H < viewY || obj.Y > viewY+height {
				continue
			}
			x, y := obj.X-viewX, obj.Y-viewY

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvLandmark) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	lines := debugLines(ecs.World, camera)
	face := fonts.Debug.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 2, 8+i*9, color.White)
	}
}

func debugLines(w donburi.World, camera *components.CameraData) []string {
	lines := []string{
		fmt.Sprintf("tps %.0f fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("cam %.1f,%.1f", camera.Position.X, camera.Position.Y),
	}

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return lines
	}
	obj := components.Object.Get(playerEntry)
	vel := components.Velocity.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	anchor := obj.Anchor()
	lines = append(lines,
		fmt.Sprintf("pos %.1f,%.1f", anchor.X, anchor.Y),
		fmt.Sprintf("vel %.1f,%.1f %s", vel.X, vel.Y, player.Animation),
	)

	if cfg.Debug.ShowTileIndex {
		if levelEntry, ok := components.Level.First(w); ok {
			if m := components.Level.Get(levelEntry).Map; m != nil {
				index, _ := m.TileAt(anchor.X, anchor.Y-1)
				lines = append(lines, fmt.Sprintf("tile %d", index))
			}
		}
	}

	tags.Landmark.Each(w, func(e *donburi.Entry) {
		landmark := components.Landmark.Get(e)
		if landmark.Visits > 0 {
			lines = append(lines, fmt.Sprintf("%s x%d", landmark.Name, landmark.Visits))
		}
	})
	return lines
}
