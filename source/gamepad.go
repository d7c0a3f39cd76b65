package source

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/axisinput/axis"
)

// ControlAxis reads one analog gamepad control through a pipeline.
type ControlAxis struct {
	Axis      GamepadAxis
	Processor axis.Pipeline
}

var (
	LeftX        = ControlAxis{Axis: AxisLeftStickX}
	LeftY        = ControlAxis{Axis: AxisLeftStickY}
	RightX       = ControlAxis{Axis: AxisRightStickX}
	RightY       = ControlAxis{Axis: AxisRightStickY}
	LeftTrigger  = ControlAxis{Axis: AxisLeftTrigger}
	RightTrigger = ControlAxis{Axis: AxisRightTrigger}
)

// WithProcessor returns a copy with p appended to the pipeline.
func (c ControlAxis) WithProcessor(p axis.Processor) ControlAxis {
	c.Processor = c.Processor.With(p)
	return c
}

func (c ControlAxis) Raw(r Reader) float32 {
	return r.GamepadAxis(c.Axis)
}

func (c ControlAxis) Value(r Reader) float32 {
	return c.Processor.Process(c.Raw(r))
}

// Stick reads two analog controls as one dual-axis value.
type Stick struct {
	Horizontal GamepadAxis
	Vertical   GamepadAxis
	Processor  axis.DualPipeline
}

var (
	LeftStick  = Stick{Horizontal: AxisLeftStickX, Vertical: AxisLeftStickY}
	RightStick = Stick{Horizontal: AxisRightStickX, Vertical: AxisRightStickY}
)

func (s Stick) WithProcessor(p axis.DualProcessor) Stick {
	s.Processor = s.Processor.With(p)
	return s
}

func (s Stick) Raw(r Reader) mgl32.Vec2 {
	return mgl32.Vec2{r.GamepadAxis(s.Horizontal), r.GamepadAxis(s.Vertical)}
}

func (s Stick) Value(r Reader) mgl32.Vec2 {
	return s.Processor.Process(s.Raw(r))
}
