package gamemath

import (
	"github.com/automoto/tilewalk/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Input is the directional part of a controls snapshot.
type Input struct {
	Up, Down, Left, Right bool
}

// ApplyInputVelocity adds speed to the velocity for each held direction.
// Down wins over up and left wins over right.
func ApplyInputVelocity(v dmath.Vec2, in Input, speed float64) dmath.Vec2 {
	if in.Down {
		v.Y += speed
	} else if in.Up {
		v.Y -= speed
	}
	if in.Left {
		v.X -= speed
	} else if in.Right {
		v.X += speed
	}
	return v
}

// ApplyFriction scales both axes by friction.
func ApplyFriction(v dmath.Vec2, friction float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * friction, Y: v.Y * friction}
}

// SelectAnimation picks the walk animation for a velocity. Later checks
// override earlier ones, so horizontal movement beats vertical.
func SelectAnimation(v dmath.Vec2, threshold float64) string {
	anim := config.AnimWalkDown
	if v.Y > threshold {
		anim = config.AnimWalkDown
	}
	if v.Y < -threshold {
		anim = config.AnimWalkUp
	}
	if v.X > threshold {
		anim = config.AnimWalkRight
	}
	if v.X < -threshold {
		anim = config.AnimWalkLeft
	}
	return anim
}
