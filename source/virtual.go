package source

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/axisinput/axis"
)

// VirtualAxis builds an axis from two buttons: Positive - Negative.
type VirtualAxis struct {
	Negative  Button
	Positive  Button
	Processor axis.Pipeline
}

var (
	DPadX      = VirtualAxis{Negative: GamepadInput(ButtonDPadLeft), Positive: GamepadInput(ButtonDPadRight)}
	DPadY      = VirtualAxis{Negative: GamepadInput(ButtonDPadDown), Positive: GamepadInput(ButtonDPadUp)}
	ActionPadX = VirtualAxis{Negative: GamepadInput(ButtonWest), Positive: GamepadInput(ButtonEast)}
	ActionPadY = VirtualAxis{Negative: GamepadInput(ButtonSouth), Positive: GamepadInput(ButtonNorth)}
	ArrowsX    = VirtualAxis{Negative: KeyInput(KeyLeft), Positive: KeyInput(KeyRight)}
	ArrowsY    = VirtualAxis{Negative: KeyInput(KeyDown), Positive: KeyInput(KeyUp)}
	WASDX      = VirtualAxis{Negative: KeyInput(KeyA), Positive: KeyInput(KeyD)}
	WASDY      = VirtualAxis{Negative: KeyInput(KeyS), Positive: KeyInput(KeyW)}
)

func (v VirtualAxis) WithProcessor(p axis.Processor) VirtualAxis {
	v.Processor = v.Processor.With(p)
	return v
}

func (v VirtualAxis) Raw(r Reader) float32 {
	return v.Positive.Value(r) - v.Negative.Value(r)
}

func (v VirtualAxis) Value(r Reader) float32 {
	return v.Processor.Process(v.Raw(r))
}

// VirtualDPad builds a dual-axis value from four buttons, +Y up.
type VirtualDPad struct {
	Up        Button
	Down      Button
	Left      Button
	Right     Button
	Processor axis.DualPipeline
}

var (
	DPad = VirtualDPad{
		Up:    GamepadInput(ButtonDPadUp),
		Down:  GamepadInput(ButtonDPadDown),
		Left:  GamepadInput(ButtonDPadLeft),
		Right: GamepadInput(ButtonDPadRight),
	}
	ActionPad = VirtualDPad{
		Up:    GamepadInput(ButtonNorth),
		Down:  GamepadInput(ButtonSouth),
		Left:  GamepadInput(ButtonWest),
		Right: GamepadInput(ButtonEast),
	}
	Arrows = VirtualDPad{Up: KeyInput(KeyUp), Down: KeyInput(KeyDown), Left: KeyInput(KeyLeft), Right: KeyInput(KeyRight)}
	WASD   = VirtualDPad{Up: KeyInput(KeyW), Down: KeyInput(KeyS), Left: KeyInput(KeyA), Right: KeyInput(KeyD)}
)

func (d VirtualDPad) WithProcessor(p axis.DualProcessor) VirtualDPad {
	d.Processor = d.Processor.With(p)
	return d
}

func (d VirtualDPad) Raw(r Reader) mgl32.Vec2 {
	return mgl32.Vec2{
		d.Right.Value(r) - d.Left.Value(r),
		d.Up.Value(r) - d.Down.Value(r),
	}
}

func (d VirtualDPad) Value(r Reader) mgl32.Vec2 {
	return d.Processor.Process(d.Raw(r))
}
