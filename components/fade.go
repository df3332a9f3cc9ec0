package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData covers the screen with the background colour at Alpha opacity.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()
