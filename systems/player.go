package systems

import (
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/gamemath"
	"github.com/automoto/tilewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayer(ecs, e)
	})
}

// updatePlayer runs one tick for a player. The order matters: collision uses
// last tick's velocity, then a living player takes input, picks its
// animation and loses speed to friction. A dead player keeps its velocity.
func updatePlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	vel := components.Velocity.Get(e)
	obj := components.Object.Get(e)
	anim := components.Animation.Get(e)

	player.Controls = ReadControls()

	resolveMovement(ecs, obj, vel)

	if player.Alive {
		vel.Vec2 = gamemath.ApplyInputVelocity(vel.Vec2, player.Controls.Direction(), cfg.Player.Speed)
		player.Animation = gamemath.SelectAnimation(vel.Vec2, cfg.Player.AnimationThreshold)
		anim.Play(player.Animation)
		vel.Vec2 = gamemath.ApplyFriction(vel.Vec2, cfg.Player.Friction)
	}

	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update(cfg.C.TPS)
	}
}
