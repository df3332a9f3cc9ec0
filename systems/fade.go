package systems

import (
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateFade(ecs *ecs.ECS) {
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Done || fade.Tween == nil {
			return
		}
		alpha, finished := fade.Tween.Update(1 / float32(cfg.C.TPS))
		fade.Alpha = alpha
		if finished {
			fade.Alpha = 0
			fade.Done = true
		}
	})
}

func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Done || fade.Alpha <= 0 {
			return
		}
		c := cfg.Game.BackgroundColor
		c.A = uint8(float32(0xff) * fade.Alpha)
		// color.RGBA is alpha-premultiplied
		c.R = uint8(float32(c.R) * fade.Alpha)
		c.G = uint8(float32(c.G) * fade.Alpha)
		c.B = uint8(float32(c.B) * fade.Alpha)
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
	})
}
