package axis

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Processor transforms a single-axis value. The set of implementations is
// closed: Inverted, Sensitivity, Bounds, Exclusion, DeadZone, Pipeline and
// Custom. Custom carries user code.
type Processor interface {
	Process(value float32) float32
	String() string
	isProcessor()
}

// DualProcessor transforms a dual-axis value. Implementations are
// DualInverted, DualSensitivity, DualBounds, DualExclusion, DualDeadZone,
// CircleBounds, CircleExclusion, CircleDeadZone, EllipseDeadZone,
// RoundedSquareDeadZone, DualPipeline and DualCustom.
type DualProcessor interface {
	Process(value mgl32.Vec2) mgl32.Vec2
	String() string
	isDualProcessor()
}

// Custom wraps an arbitrary function. A nil Func passes values through.
type Custom struct {
	Name string
	Func func(value float32) float32
}

func (c Custom) Process(value float32) float32 {
	if c.Func == nil {
		return value
	}
	return c.Func(value)
}

func (c Custom) String() string {
	return fmt.Sprintf("Custom(%s)", c.Name)
}

func (Custom) isProcessor() {}

type DualCustom struct {
	Name string
	Func func(value mgl32.Vec2) mgl32.Vec2
}

func (c DualCustom) Process(value mgl32.Vec2) mgl32.Vec2 {
	if c.Func == nil {
		return value
	}
	return c.Func(value)
}

func (c DualCustom) String() string {
	return fmt.Sprintf("DualCustom(%s)", c.Name)
}

func (DualCustom) isDualProcessor() {}

// Then appends next to p. If p is already a pipeline the result extends a
// copy of it, otherwise both are wrapped in a new pipeline.
func Then(p, next Processor) Processor {
	switch pl := p.(type) {
	case Pipeline:
		return pl.With(next)
	case *Pipeline:
		return pl.With(next)
	}
	return NewPipeline(p, next)
}

func ThenDual(p, next DualProcessor) DualProcessor {
	switch pl := p.(type) {
	case DualPipeline:
		return pl.With(next)
	case *DualPipeline:
		return pl.With(next)
	}
	return NewDualPipeline(p, next)
}

func joinStages[T fmt.Stringer](name string, stages []T) string {
	parts := make([]string, len(stages))
	for i, s := range stages {
		parts[i] = s.String()
	}
	return name + "[" + strings.Join(parts, " -> ") + "]"
}
