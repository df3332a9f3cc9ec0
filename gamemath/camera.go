package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// FollowOptions tunes Follow.
type FollowOptions struct {
	Smoothing     float64
	SnapThreshold float64
	DeadZoneX     float64
	DeadZoneY     float64
}

// DefaultFollow is the follow behaviour used when no config is supplied.
var DefaultFollow = FollowOptions{
	Smoothing:     DefaultSmoothing,
	SnapThreshold: DefaultSnapThreshold,
	DeadZoneX:     3,
	DeadZoneY:     4,
}

// CameraTarget returns the camera position that centres target in a
// viewport of the given size.
func CameraTarget(target dmath.Vec2, width, height float64) dmath.Vec2 {
	return dmath.Vec2{
		X: target.X - math.Round(width/2),
		Y: target.Y - math.Round(height/2),
	}
}

// Follow advances the camera one tick toward target. On each axis a delta
// larger than the dead zone is smoothed; anything inside it snaps.
func Follow(current, target dmath.Vec2, opts FollowOptions) dmath.Vec2 {
	return dmath.Vec2{
		X: followAxis(current.X, target.X, opts.DeadZoneX, opts),
		Y: followAxis(current.Y, target.Y, opts.DeadZoneY, opts),
	}
}

func followAxis(current, target, deadZone float64, opts FollowOptions) float64 {
	if math.Abs(target-current) > deadZone {
		return SmoothWithin(current, target, opts.Smoothing, opts.SnapThreshold)
	}
	return target
}

// ClampToBounds keeps a viewport of the given size inside a world of
// worldW x worldH pixels. Worlds smaller than the viewport are centred.
func ClampToBounds(pos dmath.Vec2, width, height, worldW, worldH float64) dmath.Vec2 {
	return dmath.Vec2{
		X: clampAxis(pos.X, width, worldW),
		Y: clampAxis(pos.Y, height, worldH),
	}
}

func clampAxis(pos, view, world float64) float64 {
	if world <= view {
		return -math.Round((view - world) / 2)
	}
	return math.Max(0, math.Min(pos, world-view))
}
