package states

import (
	"image"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const progressBarKey = "progressBar"

// progressBar eases the displayed load progress toward the real value.
type progressBar struct {
	shown  float32
	target float32
	tween  *gween.Tween
}

func (b *progressBar) Reset() {
	*b = progressBar{}
}

// Update retargets the bar when progress changes and advances the easing by
// one tick.
func (b *progressBar) Update(progress float64) {
	if p := float32(progress); p != b.target {
		b.target = p
		b.tween = gween.New(b.shown, p, config.Loading.EaseSeconds, ease.OutCubic)
	}
	if b.tween == nil {
		return
	}
	v, finished := b.tween.Update(1 / float32(config.C.TPS))
	b.shown = v
	if finished {
		b.tween = nil
	}
}

// Shown is the displayed fraction in [0, 1].
func (b *progressBar) Shown() float32 {
	return b.shown
}

func (bar *progressBar) Draw(screen *ebiten.Image, cache *assets.Cache) {
	sw, sh := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	w, h := float32(config.Loading.BarWidth), float32(config.Loading.BarHeight)
	x, y := (sw-w)/2, (sh-h)/2

	vector.FillRect(screen, x, y, w, h, config.Loading.BarBgColor, false)

	if img, ok := cache.Image(progressBarKey); ok {
		src := img.Ebiten()
		b := src.Bounds()
		cropW := int(float32(b.Dx()) * bar.shown)
		if cropW > 0 {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
			op.GeoM.Translate(float64(x), float64(y))
			crop := image.Rect(b.Min.X, b.Min.Y, b.Min.X+cropW, b.Max.Y)
			screen.DrawImage(src.SubImage(crop).(*ebiten.Image), op)
		}
	} else {
		vector.FillRect(screen, x, y, w*bar.shown, h, config.Loading.BarColor, false)
	}

	if fonts.Loaded(fonts.Loading) {
		text.Draw(screen, "loading", fonts.Loading.Get(), int(x), int(y)-4, config.Loading.BarColor)
	}
}
