package factory

import (
	"image"

	"github.com/automoto/tilewalk/archetypes"
	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer places the player so its sprite anchor sits on spawn. The
// collision body is a small box around the feet, offset inside the sprite.
func CreatePlayer(ecs *ecs.ECS, spawn image.Point, sheet *assets.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	anchor := math.Vec2{
		X: cfg.Player.AnchorX*float64(cfg.Player.FrameWidth) - cfg.Player.CollisionOffX,
		Y: cfg.Player.AnchorY*float64(cfg.Player.FrameHeight) - cfg.Player.CollisionOffY,
	}
	x := float64(spawn.X) - anchor.X
	y := float64(spawn.Y) - anchor.Y

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj, AnchorOffset: anchor})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		Alive:     true,
		Animation: cfg.AnimWalkDown,
	})
	components.Velocity.SetValue(player, components.VelocityData{})

	animData := GenerateAnimations("player", sheet)
	animData.Play(cfg.AnimWalkDown)
	components.Animation.Set(player, animData)

	return player
}
