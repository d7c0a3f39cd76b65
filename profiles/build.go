package profiles

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/milk9111/axisinput/axis"
	"github.com/milk9111/axisinput/script"
	"github.com/milk9111/axisinput/settings"
)

// ScriptSource resolves the `file` of a script processor.
type ScriptSource interface {
	ReadScript(name string) ([]byte, error)
}

// Set is a built profile, ready to process values.
type Set struct {
	Name          string
	Axes          map[string]axis.Processor
	Sticks        map[string]axis.DualProcessor
	AxisSettings  map[string]settings.SingleAxis
	StickSettings map[string]settings.DualAxis
}

// Axis returns the named processor chain, falling back to the named axis
// settings.
func (s *Set) Axis(name string) (axis.Processor, bool) {
	if p, ok := s.Axes[name]; ok {
		return p, true
	}
	if st, ok := s.AxisSettings[name]; ok {
		return st.AsProcessor(), true
	}
	return nil, false
}

func (s *Set) Stick(name string) (axis.DualProcessor, bool) {
	if p, ok := s.Sticks[name]; ok {
		return p, true
	}
	if st, ok := s.StickSettings[name]; ok {
		return st.AsProcessor(), true
	}
	return nil, false
}

func (s *Set) AxisNames() []string {
	return sortedKeys(s.Axes, s.AxisSettings)
}

func (s *Set) StickNames() []string {
	return sortedKeys(s.Sticks, s.StickSettings)
}

func sortedKeys[A, B any](a map[string]A, b map[string]B) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for k := range a {
		seen[k] = true
	}
	for k := range b {
		seen[k] = true
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type builder struct {
	scripts ScriptSource
	logger  *zap.SugaredLogger
	err     error
}

func (b *builder) fail(path, format string, args ...any) {
	b.err = multierr.Append(b.err, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
}

// Build turns p into processors. Every invalid parameter in the profile is
// reported in the returned error, not only the first.
func Build(p *Profile, scripts ScriptSource, logger *zap.SugaredLogger) (*Set, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	b := &builder{scripts: scripts, logger: logger}
	set := &Set{
		Name:          p.Name,
		Axes:          make(map[string]axis.Processor, len(p.Axes)),
		Sticks:        make(map[string]axis.DualProcessor, len(p.Sticks)),
		AxisSettings:  make(map[string]settings.SingleAxis, len(p.AxisSettings)),
		StickSettings: make(map[string]settings.DualAxis, len(p.StickSettings)),
	}

	for name, stages := range p.Axes {
		set.Axes[name] = b.pipeline("axes."+name, stages)
	}
	for name, stages := range p.Sticks {
		set.Sticks[name] = b.dualPipeline("sticks."+name, stages)
	}
	for name, spec := range p.AxisSettings {
		set.AxisSettings[name] = b.axisSettings("axis_settings."+name, spec)
	}
	for name, spec := range p.StickSettings {
		set.StickSettings[name] = b.stickSettings("stick_settings."+name, spec)
	}

	if b.err != nil {
		return nil, fmt.Errorf("profiles: build %s: %w", p.Name, b.err)
	}
	return set, nil
}

// Validate reports every problem in p.
func Validate(p *Profile, scripts ScriptSource) error {
	_, err := Build(p, scripts, nil)
	return err
}

func (b *builder) pipeline(path string, stages []ProcessorSpec) axis.Pipeline {
	var out axis.Pipeline
	for i, st := range stages {
		if proc := b.processor(fmt.Sprintf("%s[%d]", path, i), st); proc != nil {
			out.Push(proc)
		}
	}
	return out
}

func (b *builder) processor(path string, s ProcessorSpec) axis.Processor {
	switch s.Type {
	case typeInverted:
		return axis.Inverted{}
	case typeSensitivity:
		if s.Sensitivity == nil {
			b.fail(path, "sensitivity needs a factor")
			return nil
		}
		return axis.Sensitivity(s.Sensitivity.Factor)
	case typeBounds:
		bounds, ok := b.bounds(path, s.Bounds)
		if !ok {
			return nil
		}
		return bounds
	case typeExclusion, typeDeadZone:
		e, ok := b.exclusion(path, s.Exclusion)
		if !ok {
			return nil
		}
		if s.Type == typeDeadZone {
			return e.Scaled()
		}
		return e
	case typePipeline:
		if s.Pipeline == nil {
			return axis.Pipeline{}
		}
		return b.pipeline(path+".stages", s.Pipeline.Stages)
	case typeScript:
		name, src, ok := b.scriptSource(path, s.Script)
		if !ok {
			return nil
		}
		proc, err := script.Compile(name, src, b.logger)
		if err != nil {
			b.fail(path, "%v", err)
			return nil
		}
		return proc.AsProcessor()
	}
	b.fail(path, "%v %q", ErrUnknownType, s.Type)
	return nil
}

func (b *builder) bounds(path string, r *RangeSpec) (axis.Bounds, bool) {
	min, max := float32(-math.MaxFloat32), float32(math.MaxFloat32)
	if r != nil && r.Min != nil {
		min = *r.Min
	}
	if r != nil && r.Max != nil {
		max = *r.Max
	}
	if !(min <= max) {
		b.fail(path, "bounds min %v must not exceed max %v", min, max)
		return axis.Bounds{}, false
	}
	return axis.NewBounds(min, max), true
}

func (b *builder) exclusion(path string, e *ExclusionSpec) (axis.Exclusion, bool) {
	if e == nil {
		return axis.ZeroExclusion, true
	}
	var neg, pos float32
	switch {
	case e.Threshold != nil:
		if e.NegativeMax != nil || e.PositiveMin != nil {
			b.fail(path, "threshold cannot be combined with negative_max or positive_min")
			return axis.Exclusion{}, false
		}
		neg, pos = -*e.Threshold, *e.Threshold
	default:
		if e.NegativeMax != nil {
			neg = *e.NegativeMax
		}
		if e.PositiveMin != nil {
			pos = *e.PositiveMin
		}
	}
	ok := true
	if !(neg <= 0) {
		b.fail(path, "negative_max %v must be <= 0", neg)
		ok = false
	}
	if !(pos >= 0) {
		b.fail(path, "positive_min %v must be >= 0", pos)
		ok = false
	}
	if !ok {
		return axis.Exclusion{}, false
	}
	return axis.NewExclusion(neg, pos), true
}

func (b *builder) scriptSource(path string, s *ScriptSpec) (string, string, bool) {
	if s == nil || (s.Source == "") == (s.File == "") {
		b.fail(path, "script needs exactly one of source or file")
		return "", "", false
	}
	name := s.Name
	if s.Source != "" {
		if name == "" {
			name = path
		}
		return name, s.Source, true
	}
	if name == "" {
		name = s.File
	}
	if b.scripts == nil {
		b.fail(path, "script file %s given but no script source is configured", s.File)
		return "", "", false
	}
	data, err := b.scripts.ReadScript(s.File)
	if err != nil {
		b.fail(path, "read script %s: %v", s.File, err)
		return "", "", false
	}
	return name, string(data), true
}

func (b *builder) dualPipeline(path string, stages []DualSpec) axis.DualPipeline {
	var out axis.DualPipeline
	for i, st := range stages {
		if proc := b.dualProcessor(fmt.Sprintf("%s[%d]", path, i), st); proc != nil {
			out.Push(proc)
		}
	}
	return out
}

func (b *builder) dualProcessor(path string, s DualSpec) axis.DualProcessor {
	switch s.Type {
	case typeInverted:
		axes := ""
		if s.Inverted != nil {
			axes = s.Inverted.Axes
		}
		switch axes {
		case "", "xy":
			return axis.DualInvertedAll
		case "x":
			return axis.DualInvertedOnlyX
		case "y":
			return axis.DualInvertedOnlyY
		case "none":
			return axis.DualInvertedNone
		}
		b.fail(path, "inverted axes %q must be xy, x, y or none", axes)
		return nil
	case typeSensitivity:
		if s.Sensitivity == nil {
			b.fail(path, "sensitivity needs a scale")
			return nil
		}
		return axis.NewDualSensitivity(s.Sensitivity.Scale[0], s.Sensitivity.Scale[1])
	case typeBounds:
		var x, y *RangeSpec
		if s.Bounds != nil {
			x, y = s.Bounds.X, s.Bounds.Y
		}
		bx, okX := b.bounds(path+".x", x)
		by, okY := b.bounds(path+".y", y)
		if !okX || !okY {
			return nil
		}
		return axis.FromBounds(bx, by)
	case typeExclusion, typeDeadZone:
		var x, y *ExclusionSpec
		if s.Exclusion != nil {
			x, y = s.Exclusion.X, s.Exclusion.Y
		}
		ex, okX := b.exclusion(path+".x", x)
		ey, okY := b.exclusion(path+".y", y)
		if !okX || !okY {
			return nil
		}
		e := axis.FromExclusions(ex, ey)
		if s.Type == typeDeadZone {
			return e.Scaled()
		}
		return e
	case typeCircleBounds, typeCircleExclusion, typeCircleDeadZone:
		if s.Radius == nil || !(s.Radius.Radius >= 0) {
			b.fail(path, "%s needs a radius >= 0", s.Type)
			return nil
		}
		r := s.Radius.Radius
		switch s.Type {
		case typeCircleBounds:
			return axis.NewCircleBounds(r)
		case typeCircleExclusion:
			return axis.NewCircleExclusion(r)
		}
		return axis.NewCircleDeadZone(r)
	case typeEllipseDeadZone:
		e := s.Ellipse
		if e == nil || !(e.RadiusX >= 0 && e.RadiusY >= 0) {
			b.fail(path, "ellipse_deadzone needs radius_x and radius_y >= 0")
			return nil
		}
		return axis.NewEllipseDeadZone(e.RadiusX, e.RadiusY)
	case typeRoundedSquareDeadZone:
		r := s.RoundedSquare
		if r == nil || !(r.ThresholdX >= 0 && r.ThresholdY >= 0 && r.RadiusX >= 0 && r.RadiusY >= 0) {
			b.fail(path, "rounded_square_deadzone needs thresholds and radii >= 0")
			return nil
		}
		return axis.NewRoundedSquareDeadZone(r.ThresholdX, r.ThresholdY, r.RadiusX, r.RadiusY)
	case typePipeline:
		if s.Pipeline == nil {
			return axis.DualPipeline{}
		}
		return b.dualPipeline(path+".stages", s.Pipeline.Stages)
	case typeScript:
		name, src, ok := b.scriptSource(path, s.Script)
		if !ok {
			return nil
		}
		proc, err := script.CompileDual(name, src, b.logger)
		if err != nil {
			b.fail(path, "%v", err)
			return nil
		}
		return proc.AsDualProcessor()
	}
	b.fail(path, "%v %q", ErrUnknownType, s.Type)
	return nil
}

func (b *builder) limit(path string, r *RangeSpec) settings.ValueLimit {
	switch {
	case r == nil || (r.Min == nil && r.Max == nil):
		return settings.NoLimit
	case r.Min == nil:
		return settings.AtMost(*r.Max)
	case r.Max == nil:
		return settings.AtLeast(*r.Min)
	case !(*r.Min <= *r.Max):
		b.fail(path, "limit min %v must not exceed max %v", *r.Min, *r.Max)
		return settings.NoLimit
	}
	return settings.Range(*r.Min, *r.Max)
}

func (b *builder) normalizer(path string, n *NormalizerSpec) settings.Normalizer {
	if n == nil {
		return settings.NoNormalizer
	}
	if !(n.Input[0] <= n.Input[1]) {
		b.fail(path, "normalizer input %v must be ascending", n.Input)
		return settings.NoNormalizer
	}
	if n.Output == nil {
		return settings.SymmetricMinMax(n.Input[0], n.Input[1])
	}
	if !b.pair(path+".output", *n.Output) {
		return settings.NoNormalizer
	}
	return settings.CustomMinMax(n.Input[0], n.Input[1], n.Output[0], n.Output[1])
}

// pair reports whether f holds two numbers.
func (b *builder) pair(path string, f Float2) bool {
	if f[0] != f[0] || f[1] != f[1] {
		b.fail(path, "%v is not a number", f)
		return false
	}
	return true
}

func (b *builder) axisSettings(path string, s AxisSettingsSpec) settings.SingleAxis {
	out := settings.DefaultSingleAxis
	if s.Sensitivity != nil {
		out = out.WithSensitivity(*s.Sensitivity)
	}
	if s.Inverted {
		out = out.WithInverted()
	}
	out = out.WithInputLimit(b.limit(path+".input_limit", s.InputLimit))
	out = out.WithNormalizer(b.normalizer(path+".normalizer", s.Normalizer))
	if s.Deadzone != nil {
		if !(*s.Deadzone >= 0) {
			b.fail(path+".deadzone", "deadzone %v must be >= 0", *s.Deadzone)
		}
		out = out.WithSymmetricDeadzone(*s.Deadzone)
	}
	if s.OutputScale != nil {
		out = out.WithOutputScale(*s.OutputScale)
	}
	return out.WithOutputLimit(b.limit(path+".output_limit", s.OutputLimit))
}

func (b *builder) stickSettings(path string, s StickSettingsSpec) settings.DualAxis {
	out := settings.EmptyDualAxis
	if s.RawScales != nil && b.pair(path+".raw_scales", *s.RawScales) {
		out = out.WithRawScales(mgl32.Vec2(*s.RawScales))
	}
	if s.InvertX {
		out = out.WithInvertedX()
	}
	if s.InvertY {
		out = out.WithInvertedY()
	}
	if s.RawLimits != nil {
		out = out.WithRawLimitX(b.limit(path+".raw_limits.x", s.RawLimits.X)).
			WithRawLimitY(b.limit(path+".raw_limits.y", s.RawLimits.Y))
	}
	out = out.WithNormalizerX(b.normalizer(path+".normalizer_x", s.NormalizerX)).
		WithNormalizerY(b.normalizer(path+".normalizer_y", s.NormalizerY))
	if s.Deadzone != nil {
		out = out.WithDeadzone(b.dualDeadzone(path+".deadzone", *s.Deadzone))
	}
	if s.ProcessedScales != nil && b.pair(path+".processed_scales", *s.ProcessedScales) {
		out = out.WithProcessedScales(mgl32.Vec2(*s.ProcessedScales))
	}
	if s.ProcessedLimits != nil {
		out = out.WithProcessedLimitX(b.limit(path+".processed_limits.x", s.ProcessedLimits.X)).
			WithProcessedLimitY(b.limit(path+".processed_limits.y", s.ProcessedLimits.Y))
	}
	return out
}

func (b *builder) dualDeadzone(path string, d DualDeadzoneSpec) settings.DualDeadzone {
	switch d.Shape {
	case "", shapeNone:
		return settings.NoDualDeadzone
	case shapeCircle:
		return settings.Circle(d.RadiusX, d.RadiusY)
	case shapeSquare:
		return settings.Square(d.ThresholdX, d.ThresholdY)
	case shapeRoundedSquare:
		return settings.RoundedSquare(d.ThresholdX, d.ThresholdY, d.RadiusX, d.RadiusY)
	}
	b.fail(path, "unknown deadzone shape %q", d.Shape)
	return settings.NoDualDeadzone
}
