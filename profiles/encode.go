package profiles

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/axisinput/axis"
)

// ErrNotEncodable is returned for processors that only exist in code, such
// as axis.Custom.
var ErrNotEncodable = errors.New("profiles: processor cannot be encoded")

func f32(v float32) *float32 { return &v }

func rangeOf(b axis.Bounds) *RangeSpec {
	r := &RangeSpec{}
	if b.Min() != -math.MaxFloat32 {
		r.Min = f32(b.Min())
	}
	if b.Max() != math.MaxFloat32 {
		r.Max = f32(b.Max())
	}
	return r
}

func exclusionOf(e axis.Exclusion) *ExclusionSpec {
	return &ExclusionSpec{NegativeMax: f32(e.Min()), PositiveMin: f32(e.Max())}
}

// FromProcessor encodes p so that building the result yields an equal
// processor.
func FromProcessor(p axis.Processor) (ProcessorSpec, error) {
	switch v := p.(type) {
	case axis.Inverted:
		return ProcessorSpec{Type: typeInverted}, nil
	case axis.Sensitivity:
		return ProcessorSpec{Type: typeSensitivity, Sensitivity: &SensitivitySpec{Factor: float32(v)}}, nil
	case axis.Bounds:
		return ProcessorSpec{Type: typeBounds, Bounds: rangeOf(v)}, nil
	case axis.Exclusion:
		return ProcessorSpec{Type: typeExclusion, Exclusion: exclusionOf(v)}, nil
	case axis.DeadZone:
		return ProcessorSpec{Type: typeDeadZone, Exclusion: exclusionOf(v.Exclusion())}, nil
	case axis.Pipeline:
		stages := make([]ProcessorSpec, 0, v.Len())
		for i, st := range v.Stages() {
			spec, err := FromProcessor(st)
			if err != nil {
				return ProcessorSpec{}, fmt.Errorf("stage %d: %w", i, err)
			}
			stages = append(stages, spec)
		}
		return ProcessorSpec{Type: typePipeline, Pipeline: &PipelineSpec{Stages: stages}}, nil
	case *axis.Pipeline:
		return FromProcessor(*v)
	}
	return ProcessorSpec{}, fmt.Errorf("%w: %v", ErrNotEncodable, p)
}

func FromDualProcessor(p axis.DualProcessor) (DualSpec, error) {
	switch v := p.(type) {
	case axis.DualInverted:
		inv := v.IsInverted()
		axes := "none"
		switch {
		case inv[0] && inv[1]:
			axes = "xy"
		case inv[0]:
			axes = "x"
		case inv[1]:
			axes = "y"
		}
		return DualSpec{Type: typeInverted, Inverted: &AxesSpec{Axes: axes}}, nil
	case axis.DualSensitivity:
		return DualSpec{Type: typeSensitivity, Sensitivity: &ScaleSpec{Scale: Float2(v.Scale())}}, nil
	case axis.DualBounds:
		return DualSpec{Type: typeBounds, Bounds: &DualRangeSpec{X: rangeOf(v.X()), Y: rangeOf(v.Y())}}, nil
	case axis.DualExclusion:
		return DualSpec{Type: typeExclusion, Exclusion: &DualExclusionSpec{
			X: exclusionOf(v.X()),
			Y: exclusionOf(v.Y()),
		}}, nil
	case axis.DualDeadZone:
		return DualSpec{Type: typeDeadZone, Exclusion: &DualExclusionSpec{
			X: exclusionOf(v.X().Exclusion()),
			Y: exclusionOf(v.Y().Exclusion()),
		}}, nil
	case axis.CircleBounds:
		return DualSpec{Type: typeCircleBounds, Radius: &RadiusSpec{Radius: v.Radius()}}, nil
	case axis.CircleExclusion:
		return DualSpec{Type: typeCircleExclusion, Radius: &RadiusSpec{Radius: v.Radius()}}, nil
	case axis.CircleDeadZone:
		return DualSpec{Type: typeCircleDeadZone, Radius: &RadiusSpec{Radius: v.Radius()}}, nil
	case axis.EllipseDeadZone:
		rx, ry := v.Radii()
		return DualSpec{Type: typeEllipseDeadZone, Ellipse: &EllipseSpec{RadiusX: rx, RadiusY: ry}}, nil
	case axis.RoundedSquareDeadZone:
		tx, ty := v.Thresholds()
		rx, ry := v.Radii()
		return DualSpec{Type: typeRoundedSquareDeadZone, RoundedSquare: &RoundedSquareSpec{
			ThresholdX: tx,
			ThresholdY: ty,
			RadiusX:    rx,
			RadiusY:    ry,
		}}, nil
	case axis.DualPipeline:
		stages := make([]DualSpec, 0, v.Len())
		for i, st := range v.Stages() {
			spec, err := FromDualProcessor(st)
			if err != nil {
				return DualSpec{}, fmt.Errorf("stage %d: %w", i, err)
			}
			stages = append(stages, spec)
		}
		return DualSpec{Type: typePipeline, Pipeline: &DualPipelineSpec{Stages: stages}}, nil
	case *axis.DualPipeline:
		return FromDualProcessor(*v)
	}
	return DualSpec{}, fmt.Errorf("%w: %v", ErrNotEncodable, p)
}
