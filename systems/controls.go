package systems

import (
	"errors"

	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrControlsNotInitialized is the panic value when controls are read before
// InitControls.
var ErrControlsNotInitialized = errors.New("controls not initialized")

// KeySource is the input device state the controls adapter polls.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
}

// EbitenKeys reads the real keyboard and gamepads.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenKeys) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (EbitenKeys) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (EbitenKeys) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (EbitenKeys) StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

// Controls maps the configured bindings onto held action state.
type Controls struct {
	src KeySource
	// Reusable slice for gamepad IDs to avoid allocations
	gamepads []ebiten.GamepadID
}

func NewControls(src KeySource) *Controls {
	return &Controls{src: src}
}

// Pressed reports whether any key, gamepad button or stick direction bound
// to action is held.
func (c *Controls) Pressed(action cfg.ActionID) bool {
	if c == nil || c.src == nil {
		panic(ErrControlsNotInitialized)
	}
	binding := cfg.Input.Bindings[action]
	for _, key := range binding.Keys {
		if c.src.IsKeyPressed(key) {
			return true
		}
	}

	c.gamepads = c.src.AppendGamepadIDs(c.gamepads[:0])
	for _, id := range c.gamepads {
		if !c.src.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if c.src.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
		if c.stickHeld(id, action) {
			return true
		}
	}
	return false
}

func (c *Controls) stickHeld(id ebiten.GamepadID, action cfg.ActionID) bool {
	deadzone := cfg.Input.AnalogDeadzone
	switch action {
	case cfg.ActionLeft:
		return c.src.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal) < -deadzone
	case cfg.ActionRight:
		return c.src.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal) > deadzone
	case cfg.ActionUp:
		return c.src.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical) < -deadzone
	case cfg.ActionDown:
		return c.src.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical) > deadzone
	}
	return false
}

// Snapshot reads every control once. There is no edge detection or
// buffering: a key is either held this tick or it is not.
func (c *Controls) Snapshot() components.ControlsData {
	return components.ControlsData{
		Up:     c.Pressed(cfg.ActionUp),
		Down:   c.Pressed(cfg.ActionDown),
		Left:   c.Pressed(cfg.ActionLeft),
		Right:  c.Pressed(cfg.ActionRight),
		Action: c.Pressed(cfg.ActionAction),
	}
}

var controls *Controls

// InitControls installs the process-wide controls adapter.
func InitControls(src KeySource) *Controls {
	controls = NewControls(src)
	return controls
}

// ResetControls removes the installed adapter.
func ResetControls() {
	controls = nil
}

// ReadControls returns the current snapshot of the installed adapter. It
// panics with ErrControlsNotInitialized if InitControls was never called.
func ReadControls() components.ControlsData {
	if controls == nil {
		panic(ErrControlsNotInitialized)
	}
	return controls.Snapshot()
}

// ReadAction reports whether a single action is held.
func ReadAction(action cfg.ActionID) bool {
	if controls == nil {
		panic(ErrControlsNotInitialized)
	}
	return controls.Pressed(action)
}
