package components

import "github.com/automoto/tilewalk/gamemath"

// ControlsData is the held state of every control for one tick.
type ControlsData struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Action bool
}

// Direction returns the directional part of the snapshot.
func (c ControlsData) Direction() gamemath.Input {
	return gamemath.Input{Up: c.Up, Down: c.Down, Left: c.Left, Right: c.Right}
}
