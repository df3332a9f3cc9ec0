package components

import (
	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Sheet            *assets.Image
	Animations       map[string]*animations.Animation
	CurrentAnimation *animations.Animation
}

// Play switches to the named animation. Playing the current animation again
// keeps its frame position.
func (a *AnimationData) Play(name string) {
	if a.CurrentAnimation != nil && a.CurrentAnimation.Name == name {
		return
	}
	anim, ok := a.Animations[name]
	if !ok {
		return
	}
	anim.Restart()
	a.CurrentAnimation = anim
}

// Frame returns the spritesheet index to draw, or -1 when nothing is playing.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return -1
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
