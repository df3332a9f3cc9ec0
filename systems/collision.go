package systems

import (
	"math"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// resolveMovement moves a body by one tick of its velocity, one axis at a
// time, stopping at solid walls and at the world edge. A blocked axis loses
// its velocity. The body's space cells are refreshed later by UpdateObjects.
func resolveMovement(ecs *ecs.ECS, obj *components.ObjectData, vel *components.VelocityData) {
	dt := 1 / float64(cfg.C.TPS)

	if dx := vel.X * dt; dx != 0 {
		moved, blocked := sweep(obj.Object, dx, 0)
		obj.X += moved
		if blocked {
			vel.X = 0
		}
	}

	if dy := vel.Y * dt; dy != 0 {
		moved, blocked := sweep(obj.Object, 0, dy)
		obj.Y += moved
		if blocked {
			vel.Y = 0
		}
	}

	clampToWorld(ecs, obj, vel)
}

// sweep returns how far a body may travel along one axis. The query is
// extended by a pixel so contacts that land exactly on a cell boundary are
// still found.
func sweep(object *resolv.Object, dx, dy float64) (float64, bool) {
	delta := dx + dy
	reachX, reachY := dx, dy
	if dx != 0 {
		reachX += math.Copysign(1, dx)
	} else {
		reachY += math.Copysign(1, dy)
	}

	check := object.Check(reachX, reachY, tags.ResolvSolid)
	if check == nil {
		return delta, false
	}

	move, blocked := delta, false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		contact := check.ContactWithObject(solid)
		c := contact.X()
		if dy != 0 {
			c = contact.Y()
		}
		if (delta > 0 && c < move) || (delta < 0 && c > move) {
			move, blocked = c, true
		}
	}
	return move, blocked
}

func clampToWorld(ecs *ecs.ECS, obj *components.ObjectData, vel *components.VelocityData) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	m := components.Level.Get(levelEntry).Map
	if m == nil {
		return
	}

	maxX := float64(m.Width) - obj.W
	maxY := float64(m.Height) - obj.H
	if obj.X < 0 {
		obj.X, vel.X = 0, 0
	} else if obj.X > maxX {
		obj.X, vel.X = maxX, 0
	}
	if obj.Y < 0 {
		obj.Y, vel.Y = 0, 0
	} else if obj.Y > maxY {
		obj.Y, vel.Y = maxY, 0
	}
}
