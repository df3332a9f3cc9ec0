// Package gamemath holds the frame-rate independent maths shared by the
// camera and the player: smoothing, dead-zone follow, input velocity,
// friction and walk animation selection.
package gamemath

import "math"

const (
	DefaultSmoothing     = 10
	DefaultSnapThreshold = 0.01
)

// Smooth moves current a fraction of the way to target. Once a step would be
// smaller than DefaultSnapThreshold it lands on target, so repeated calls
// converge in a finite number of steps. A non-positive smoothing uses
// DefaultSmoothing.
func Smooth(current, target, smoothing float64) float64 {
	return SmoothWithin(current, target, smoothing, DefaultSnapThreshold)
}

// SmoothWithin is Smooth with an explicit snap threshold.
func SmoothWithin(current, target, smoothing, threshold float64) float64 {
	if smoothing <= 0 {
		smoothing = DefaultSmoothing
	}
	step := (target - current) / smoothing
	if math.Abs(step) < threshold {
		return target
	}
	return current + step
}
