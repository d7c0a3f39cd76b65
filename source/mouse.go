package source

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/axisinput/axis"
)

// MouseMotion is the cursor delta of the current frame.
type MouseMotion struct {
	Processor axis.DualPipeline
}

func (m MouseMotion) WithProcessor(p axis.DualProcessor) MouseMotion {
	m.Processor = m.Processor.With(p)
	return m
}

func (m MouseMotion) Value(r Reader) mgl32.Vec2 {
	return m.Processor.Process(r.CursorDelta())
}

// MouseMotionAxis is one component of the cursor delta.
type MouseMotionAxis struct {
	Direction Direction
	Processor axis.Pipeline
}

func (m MouseMotionAxis) WithProcessor(p axis.Processor) MouseMotionAxis {
	m.Processor = m.Processor.With(p)
	return m
}

func (m MouseMotionAxis) Value(r Reader) float32 {
	return m.Processor.Process(m.Direction.Of(r.CursorDelta()))
}

type MouseScroll struct {
	Processor axis.DualPipeline
}

func (m MouseScroll) WithProcessor(p axis.DualProcessor) MouseScroll {
	m.Processor = m.Processor.With(p)
	return m
}

func (m MouseScroll) Value(r Reader) mgl32.Vec2 {
	return m.Processor.Process(r.Wheel())
}

type MouseScrollAxis struct {
	Direction Direction
	Processor axis.Pipeline
}

func (m MouseScrollAxis) WithProcessor(p axis.Processor) MouseScrollAxis {
	m.Processor = m.Processor.With(p)
	return m
}

func (m MouseScrollAxis) Value(r Reader) float32 {
	return m.Processor.Process(m.Direction.Of(r.Wheel()))
}
