package profiles

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownType = errors.New("profiles: unknown processor type")
	ErrNotFound    = errors.New("profiles: profile not found")
	ErrInvalidName = errors.New("profiles: name leaves the profile directory")
)

// Profile is the on-disk form of a set of named processor chains and
// settings.
type Profile struct {
	Name          string                       `yaml:"name"`
	Description   string                       `yaml:"description,omitempty"`
	Axes          map[string][]ProcessorSpec   `yaml:"axes,omitempty"`
	Sticks        map[string][]DualSpec        `yaml:"sticks,omitempty"`
	AxisSettings  map[string]AxisSettingsSpec  `yaml:"axis_settings,omitempty"`
	StickSettings map[string]StickSettingsSpec `yaml:"stick_settings,omitempty"`
}

// Float2 decodes either a scalar, applied to both axes, or a two element
// sequence.
type Float2 [2]float32

func (f *Float2) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		v, err := parseFloat(value)
		if err != nil {
			return err
		}
		*f = Float2{v, v}
		return nil
	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: expected 2 values, got %d", value.Line, len(value.Content))
		}
		for i, item := range value.Content {
			v, err := parseFloat(item)
			if err != nil {
				return err
			}
			f[i] = v
		}
		return nil
	}
	return fmt.Errorf("line %d: expected a number or a pair of numbers", value.Line)
}

func (f Float2) MarshalYAML() (any, error) {
	if f[0] == f[1] {
		return f[0], nil
	}
	return []float32{f[0], f[1]}, nil
}

func parseFloat(n *yaml.Node) (float32, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("line %d: expected a number", n.Line)
	}
	var v float32
	if err := n.Decode(&v); err != nil {
		return 0, fmt.Errorf("line %d: invalid number %q", n.Line, n.Value)
	}
	return v, nil
}

// RangeSpec is an optional lower and upper bound.
type RangeSpec struct {
	Min *float32 `yaml:"min,omitempty"`
	Max *float32 `yaml:"max,omitempty"`
}

// ExclusionSpec is either an explicit band or a symmetric threshold.
type ExclusionSpec struct {
	NegativeMax *float32 `yaml:"negative_max,omitempty"`
	PositiveMin *float32 `yaml:"positive_min,omitempty"`
	Threshold   *float32 `yaml:"threshold,omitempty"`
}

type ScriptSpec struct {
	Name   string `yaml:"name,omitempty"`
	Source string `yaml:"source,omitempty"`
	File   string `yaml:"file,omitempty"`
}

type SensitivitySpec struct {
	Factor float32 `yaml:"factor"`
}

type PipelineSpec struct {
	Stages []ProcessorSpec `yaml:"stages"`
}

// ProcessorSpec is a single-axis processor keyed by `type`. Exactly one of
// the variant fields is set, matching Type.
type ProcessorSpec struct {
	Type        string
	Sensitivity *SensitivitySpec
	Bounds      *RangeSpec
	Exclusion   *ExclusionSpec
	Pipeline    *PipelineSpec
	Script      *ScriptSpec
}

const (
	typeInverted              = "inverted"
	typeSensitivity           = "sensitivity"
	typeBounds                = "bounds"
	typeExclusion             = "exclusion"
	typeDeadZone              = "deadzone"
	typePipeline              = "pipeline"
	typeScript                = "script"
	typeCircleBounds          = "circle_bounds"
	typeCircleExclusion       = "circle_exclusion"
	typeCircleDeadZone        = "circle_deadzone"
	typeEllipseDeadZone       = "ellipse_deadzone"
	typeRoundedSquareDeadZone = "rounded_square_deadzone"
)

// tagged writes the discriminant next to the variant's own fields.
type tagged[T any] struct {
	Type string `yaml:"type"`
	Body T      `yaml:",inline"`
}

func body[T any](typ string, b *T) (any, error) {
	if b == nil {
		return nil, fmt.Errorf("profiles: %s processor has no parameters", typ)
	}
	return tagged[T]{Type: typ, Body: *b}, nil
}

func decodeBody[T any](value *yaml.Node) (*T, error) {
	var t tagged[T]
	if err := value.Decode(&t); err != nil {
		return nil, err
	}
	return &t.Body, nil
}

func readType(value *yaml.Node) (string, error) {
	if value.Kind != yaml.MappingNode {
		return "", fmt.Errorf("line %d: processor must be a mapping", value.Line)
	}
	var head struct {
		Type string `yaml:"type"`
	}
	if err := value.Decode(&head); err != nil {
		return "", err
	}
	if head.Type == "" {
		return "", fmt.Errorf("line %d: processor is missing a type", value.Line)
	}
	return head.Type, nil
}

func (s *ProcessorSpec) UnmarshalYAML(value *yaml.Node) error {
	typ, err := readType(value)
	if err != nil {
		return err
	}
	out := ProcessorSpec{Type: typ}
	switch typ {
	case typeInverted:
	case typeSensitivity:
		out.Sensitivity, err = decodeBody[SensitivitySpec](value)
	case typeBounds:
		out.Bounds, err = decodeBody[RangeSpec](value)
	case typeExclusion, typeDeadZone:
		out.Exclusion, err = decodeBody[ExclusionSpec](value)
	case typePipeline:
		out.Pipeline, err = decodeBody[PipelineSpec](value)
	case typeScript:
		out.Script, err = decodeBody[ScriptSpec](value)
	default:
		return fmt.Errorf("line %d: %w %q", value.Line, ErrUnknownType, typ)
	}
	if err != nil {
		return err
	}
	*s = out
	return nil
}

func (s ProcessorSpec) MarshalYAML() (any, error) {
	switch s.Type {
	case typeInverted:
		return tagged[struct{}]{Type: s.Type}, nil
	case typeSensitivity:
		return body(s.Type, s.Sensitivity)
	case typeBounds:
		return body(s.Type, s.Bounds)
	case typeExclusion, typeDeadZone:
		return body(s.Type, s.Exclusion)
	case typePipeline:
		return body(s.Type, s.Pipeline)
	case typeScript:
		return body(s.Type, s.Script)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, s.Type)
}

// DualRangeSpec bounds each axis; a missing axis is unbounded.
type DualRangeSpec struct {
	X *RangeSpec `yaml:"x,omitempty"`
	Y *RangeSpec `yaml:"y,omitempty"`
}

// DualExclusionSpec excludes each axis; a missing axis excludes only 0.
type DualExclusionSpec struct {
	X *ExclusionSpec `yaml:"x,omitempty"`
	Y *ExclusionSpec `yaml:"y,omitempty"`
}

// AxesSpec names the inverted axes: "xy", "x", "y" or "none".
type AxesSpec struct {
	Axes string `yaml:"axes,omitempty"`
}

type ScaleSpec struct {
	Scale Float2 `yaml:"scale"`
}

type RadiusSpec struct {
	Radius float32 `yaml:"radius"`
}

type EllipseSpec struct {
	RadiusX float32 `yaml:"radius_x"`
	RadiusY float32 `yaml:"radius_y"`
}

type RoundedSquareSpec struct {
	ThresholdX float32 `yaml:"threshold_x"`
	ThresholdY float32 `yaml:"threshold_y"`
	RadiusX    float32 `yaml:"radius_x"`
	RadiusY    float32 `yaml:"radius_y"`
}

type DualPipelineSpec struct {
	Stages []DualSpec `yaml:"stages"`
}

// DualSpec is a dual-axis processor keyed by `type`.
type DualSpec struct {
	Type          string
	Inverted      *AxesSpec
	Sensitivity   *ScaleSpec
	Bounds        *DualRangeSpec
	Exclusion     *DualExclusionSpec
	Radius        *RadiusSpec
	Ellipse       *EllipseSpec
	RoundedSquare *RoundedSquareSpec
	Pipeline      *DualPipelineSpec
	Script        *ScriptSpec
}

func (s *DualSpec) UnmarshalYAML(value *yaml.Node) error {
	typ, err := readType(value)
	if err != nil {
		return err
	}
	out := DualSpec{Type: typ}
	switch typ {
	case typeInverted:
		out.Inverted, err = decodeBody[AxesSpec](value)
	case typeSensitivity:
		out.Sensitivity, err = decodeBody[ScaleSpec](value)
	case typeBounds:
		out.Bounds, err = decodeBody[DualRangeSpec](value)
	case typeExclusion, typeDeadZone:
		out.Exclusion, err = decodeBody[DualExclusionSpec](value)
	case typeCircleBounds, typeCircleExclusion, typeCircleDeadZone:
		out.Radius, err = decodeBody[RadiusSpec](value)
	case typeEllipseDeadZone:
		out.Ellipse, err = decodeBody[EllipseSpec](value)
	case typeRoundedSquareDeadZone:
		out.RoundedSquare, err = decodeBody[RoundedSquareSpec](value)
	case typePipeline:
		out.Pipeline, err = decodeBody[DualPipelineSpec](value)
	case typeScript:
		out.Script, err = decodeBody[ScriptSpec](value)
	default:
		return fmt.Errorf("line %d: %w %q", value.Line, ErrUnknownType, typ)
	}
	if err != nil {
		return err
	}
	*s = out
	return nil
}

func (s DualSpec) MarshalYAML() (any, error) {
	switch s.Type {
	case typeInverted:
		return body(s.Type, s.Inverted)
	case typeSensitivity:
		return body(s.Type, s.Sensitivity)
	case typeBounds:
		return body(s.Type, s.Bounds)
	case typeExclusion, typeDeadZone:
		return body(s.Type, s.Exclusion)
	case typeCircleBounds, typeCircleExclusion, typeCircleDeadZone:
		return body(s.Type, s.Radius)
	case typeEllipseDeadZone:
		return body(s.Type, s.Ellipse)
	case typeRoundedSquareDeadZone:
		return body(s.Type, s.RoundedSquare)
	case typePipeline:
		return body(s.Type, s.Pipeline)
	case typeScript:
		return body(s.Type, s.Script)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, s.Type)
}
