// Package source turns raw device samples into processed axis values.
package source

import "github.com/go-gl/mathgl/mgl32"

// GamepadAxis is an analog control of a standard gamepad layout. Sticks
// report [-1, 1] with +Y down, triggers report [0, 1].
type GamepadAxis uint8

const (
	AxisLeftStickX GamepadAxis = iota
	AxisLeftStickY
	AxisRightStickX
	AxisRightStickY
	AxisLeftTrigger
	AxisRightTrigger
)

func (a GamepadAxis) String() string {
	switch a {
	case AxisLeftStickX:
		return "LeftStickX"
	case AxisLeftStickY:
		return "LeftStickY"
	case AxisRightStickX:
		return "RightStickX"
	case AxisRightStickY:
		return "RightStickY"
	case AxisLeftTrigger:
		return "LeftTrigger"
	case AxisRightTrigger:
		return "RightTrigger"
	}
	return "UnknownAxis"
}

type GamepadButton uint8

const (
	ButtonDPadUp GamepadButton = iota
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonNorth
	ButtonSouth
	ButtonWest
	ButtonEast
	ButtonLeftBumper
	ButtonRightBumper
	ButtonStart
	ButtonSelect
)

type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
)

// Reader is the device state for the current frame.
type Reader interface {
	GamepadAxis(axis GamepadAxis) float32
	GamepadButton(button GamepadButton) bool
	KeyPressed(key Key) bool
	// CursorDelta is the cursor movement since the previous frame, in pixels.
	CursorDelta() mgl32.Vec2
	Wheel() mgl32.Vec2
}

// Button is either a gamepad button or a keyboard key.
type Button struct {
	gamepad GamepadButton
	key     Key
	isKey   bool
}

func GamepadInput(b GamepadButton) Button { return Button{gamepad: b} }
func KeyInput(k Key) Button               { return Button{key: k, isKey: true} }

func (b Button) Pressed(r Reader) bool {
	if b.isKey {
		return r.KeyPressed(b.key)
	}
	return r.GamepadButton(b.gamepad)
}

// Value is 1 while pressed, else 0.
func (b Button) Value(r Reader) float32 {
	if b.Pressed(r) {
		return 1
	}
	return 0
}

// Direction selects one component of a dual-axis value.
type Direction uint8

const (
	DirectionX Direction = iota
	DirectionY
)

func (d Direction) Of(v mgl32.Vec2) float32 {
	if d == DirectionY {
		return v.Y()
	}
	return v.X()
}
