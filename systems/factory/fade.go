package factory

import (
	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFade creates a full-screen cover that fades out over seconds.
func CreateFade(ecs *ecs.ECS, seconds float32) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{
		Tween: gween.New(1, 0, seconds, ease.OutQuad),
		Alpha: 1,
	})
	return fade
}
