package factory

import (
	"fmt"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/assets/animations"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
)

// GenerateAnimations creates an AnimationData component for a character key
// (e.g., "player") from its animation definitions in config, drawing frames
// from sheet.
func GenerateAnimations(key string, sheet *assets.Image) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Sheet:      sheet,
		Animations: make(map[string]*animations.Animation, len(defs)),
	}
	for name, def := range defs {
		animData.Animations[name] = animations.NewAnimation(name, def.Frames, def.FPS, def.Loop)
	}
	return animData
}
