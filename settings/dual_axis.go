package settings

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/axisinput/axis"
)

// DualAxis processes a dual-axis value in the same order as SingleAxis,
// with per-axis scales, limits and normalizers and one shared deadzone.
type DualAxis struct {
	rawScales       mgl32.Vec2
	rawLimits       [2]ValueLimit
	normalizers     [2]Normalizer
	deadzone        DualDeadzone
	processedScales mgl32.Vec2
	processedLimits [2]ValueLimit
}

var (
	EmptyDualAxis = DualAxis{
		rawScales:       mgl32.Vec2{1, 1},
		processedScales: mgl32.Vec2{1, 1},
	}
	DefaultCircleDualAxis        = EmptyDualAxis.WithDeadzone(DefaultCircle)
	DefaultSquareDualAxis        = EmptyDualAxis.WithDeadzone(DefaultSquare)
	DefaultRoundedSquareDualAxis = EmptyDualAxis.WithDeadzone(DefaultRoundedSquare)
)

func (s DualAxis) WithRawScales(scales mgl32.Vec2) DualAxis {
	s.rawScales = scales
	return s
}

func (s DualAxis) WithRawScaleX(scale float32) DualAxis {
	s.rawScales[0] = scale
	return s
}

func (s DualAxis) WithRawScaleY(scale float32) DualAxis {
	s.rawScales[1] = scale
	return s
}

// WithInverted flips the sign of both raw scales.
func (s DualAxis) WithInverted() DualAxis {
	s.rawScales = s.rawScales.Mul(-1)
	return s
}

func (s DualAxis) WithInvertedX() DualAxis {
	s.rawScales[0] = -s.rawScales[0]
	return s
}

func (s DualAxis) WithInvertedY() DualAxis {
	s.rawScales[1] = -s.rawScales[1]
	return s
}

func (s DualAxis) WithRawLimitX(limit ValueLimit) DualAxis {
	s.rawLimits[0] = limit
	return s
}

func (s DualAxis) WithRawLimitY(limit ValueLimit) DualAxis {
	s.rawLimits[1] = limit
	return s
}

func (s DualAxis) WithNormalizerX(n Normalizer) DualAxis {
	s.normalizers[0] = n
	return s
}

func (s DualAxis) WithNormalizerY(n Normalizer) DualAxis {
	s.normalizers[1] = n
	return s
}

func (s DualAxis) WithDeadzone(d DualDeadzone) DualAxis {
	s.deadzone = d
	return s
}

func (s DualAxis) WithProcessedScales(scales mgl32.Vec2) DualAxis {
	s.processedScales = scales
	return s
}

func (s DualAxis) WithProcessedScaleX(scale float32) DualAxis {
	s.processedScales[0] = scale
	return s
}

func (s DualAxis) WithProcessedScaleY(scale float32) DualAxis {
	s.processedScales[1] = scale
	return s
}

func (s DualAxis) WithProcessedLimitX(limit ValueLimit) DualAxis {
	s.processedLimits[0] = limit
	return s
}

func (s DualAxis) WithProcessedLimitY(limit ValueLimit) DualAxis {
	s.processedLimits[1] = limit
	return s
}

func (s DualAxis) RawScales() mgl32.Vec2          { return s.rawScales }
func (s DualAxis) RawLimits() [2]ValueLimit       { return s.rawLimits }
func (s DualAxis) Normalizers() [2]Normalizer     { return s.normalizers }
func (s DualAxis) Deadzone() DualDeadzone         { return s.deadzone }
func (s DualAxis) ProcessedScales() mgl32.Vec2    { return s.processedScales }
func (s DualAxis) ProcessedLimits() [2]ValueLimit { return s.processedLimits }

func (s DualAxis) Value(value mgl32.Vec2) mgl32.Vec2 {
	x, y := value[0]*s.rawScales[0], value[1]*s.rawScales[1]
	x, y = s.rawLimits[0].Clamp(x), s.rawLimits[1].Clamp(y)
	x, y = s.normalizers[0].Normalize(x), s.normalizers[1].Normalize(y)
	v := s.deadzone.Value(mgl32.Vec2{x, y})
	x, y = v[0]*s.processedScales[0], v[1]*s.processedScales[1]
	return mgl32.Vec2{s.processedLimits[0].Clamp(x), s.processedLimits[1].Clamp(y)}
}

func (s DualAxis) AsProcessor() axis.DualProcessor {
	return axis.DualCustom{Name: s.String(), Func: s.Value}
}

func (s DualAxis) String() string {
	return fmt.Sprintf("DualAxis{raw: %v, deadzone: %s, processed: %v}", s.rawScales, s.deadzone, s.processedScales)
}
