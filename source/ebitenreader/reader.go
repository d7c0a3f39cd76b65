// Package ebitenreader implements source.Reader on top of ebiten.
package ebitenreader

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/axisinput/source"
)

// Controllers without the standard layout report sticks and triggers on
// these raw axis indices.
var rawAxes = [...]int{
	source.AxisLeftStickX:   0,
	source.AxisLeftStickY:   1,
	source.AxisRightStickX:  2,
	source.AxisRightStickY:  3,
	source.AxisLeftTrigger:  4,
	source.AxisRightTrigger: 5,
}

var standardButtons = [...]ebiten.StandardGamepadButton{
	source.ButtonDPadUp:      ebiten.StandardGamepadButtonLeftTop,
	source.ButtonDPadDown:    ebiten.StandardGamepadButtonLeftBottom,
	source.ButtonDPadLeft:    ebiten.StandardGamepadButtonLeftLeft,
	source.ButtonDPadRight:   ebiten.StandardGamepadButtonLeftRight,
	source.ButtonNorth:       ebiten.StandardGamepadButtonRightTop,
	source.ButtonSouth:       ebiten.StandardGamepadButtonRightBottom,
	source.ButtonWest:        ebiten.StandardGamepadButtonRightLeft,
	source.ButtonEast:        ebiten.StandardGamepadButtonRightRight,
	source.ButtonLeftBumper:  ebiten.StandardGamepadButtonFrontTopLeft,
	source.ButtonRightBumper: ebiten.StandardGamepadButtonFrontTopRight,
	source.ButtonStart:       ebiten.StandardGamepadButtonCenterRight,
	source.ButtonSelect:      ebiten.StandardGamepadButtonCenterLeft,
}

var keys = [...]ebiten.Key{
	source.KeyUp:    ebiten.KeyArrowUp,
	source.KeyDown:  ebiten.KeyArrowDown,
	source.KeyLeft:  ebiten.KeyArrowLeft,
	source.KeyRight: ebiten.KeyArrowRight,
	source.KeyW:     ebiten.KeyW,
	source.KeyA:     ebiten.KeyA,
	source.KeyS:     ebiten.KeyS,
	source.KeyD:     ebiten.KeyD,
}

// Reader samples one gamepad, the keyboard and the mouse. Call Update once
// per tick before reading.
type Reader struct {
	index     int
	id        ebiten.GamepadID
	connected bool
	logger    *zap.SugaredLogger

	ids    []ebiten.GamepadID
	cursor [2]int
	primed bool
	delta  mgl32.Vec2
	wheel  mgl32.Vec2
}

var _ source.Reader = (*Reader)(nil)

// New reads the index-th connected gamepad.
func New(index int, logger *zap.SugaredLogger) *Reader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Reader{index: index, logger: logger}
}

func (r *Reader) Connected() bool { return r.connected }

func (r *Reader) GamepadName() string {
	if !r.connected {
		return ""
	}
	return ebiten.GamepadName(r.id)
}

func (r *Reader) Update() {
	r.ids = inpututil.AppendJustConnectedGamepadIDs(r.ids[:0])
	for _, id := range r.ids {
		r.logger.Infow("source: gamepad connected", "id", id, "name", ebiten.GamepadName(id),
			"standard", ebiten.IsStandardGamepadLayoutAvailable(id))
	}
	if r.connected && inpututil.IsGamepadJustDisconnected(r.id) {
		r.logger.Infow("source: gamepad disconnected", "id", r.id)
		r.connected = false
	}
	if !r.connected {
		r.ids = ebiten.AppendGamepadIDs(r.ids[:0])
		if r.index < len(r.ids) {
			r.id = r.ids[r.index]
			r.connected = true
			r.logger.Debugw("source: reading gamepad", "id", r.id, "index", r.index)
		}
	}

	x, y := ebiten.CursorPosition()
	if r.primed {
		r.delta = mgl32.Vec2{float32(x - r.cursor[0]), float32(y - r.cursor[1])}
	}
	r.cursor = [2]int{x, y}
	r.primed = true

	wx, wy := ebiten.Wheel()
	r.wheel = mgl32.Vec2{float32(wx), float32(wy)}
}

func (r *Reader) GamepadAxis(a source.GamepadAxis) float32 {
	if !r.connected || int(a) >= len(rawAxes) {
		return 0
	}
	if !ebiten.IsStandardGamepadLayoutAvailable(r.id) {
		return float32(ebiten.GamepadAxis(r.id, rawAxes[a]))
	}
	switch a {
	case source.AxisLeftStickX:
		return float32(ebiten.StandardGamepadAxisValue(r.id, ebiten.StandardGamepadAxisLeftStickHorizontal))
	case source.AxisLeftStickY:
		return float32(ebiten.StandardGamepadAxisValue(r.id, ebiten.StandardGamepadAxisLeftStickVertical))
	case source.AxisRightStickX:
		return float32(ebiten.StandardGamepadAxisValue(r.id, ebiten.StandardGamepadAxisRightStickHorizontal))
	case source.AxisRightStickY:
		return float32(ebiten.StandardGamepadAxisValue(r.id, ebiten.StandardGamepadAxisRightStickVertical))
	case source.AxisLeftTrigger:
		return float32(ebiten.StandardGamepadButtonValue(r.id, ebiten.StandardGamepadButtonFrontBottomLeft))
	case source.AxisRightTrigger:
		return float32(ebiten.StandardGamepadButtonValue(r.id, ebiten.StandardGamepadButtonFrontBottomRight))
	}
	return 0
}

func (r *Reader) GamepadButton(b source.GamepadButton) bool {
	if !r.connected || int(b) >= len(standardButtons) {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(r.id, standardButtons[b])
}

func (r *Reader) KeyPressed(k source.Key) bool {
	if int(k) >= len(keys) {
		return false
	}
	return ebiten.IsKeyPressed(keys[k])
}

func (r *Reader) CursorDelta() mgl32.Vec2 { return r.delta }
func (r *Reader) Wheel() mgl32.Vec2       { return r.wheel }
