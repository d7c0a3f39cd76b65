package settings

import (
	"fmt"

	"github.com/milk9111/axisinput/axis"
	"github.com/milk9111/axisinput/common"
)

// SingleAxis processes a single-axis value in a fixed order:
// input multiplier, input limit, normalizer, deadzone, output scale,
// output limit. With* methods return modified copies.
type SingleAxis struct {
	inputMultiplier float32
	inputLimit      ValueLimit
	normalizer      Normalizer
	deadzone        Deadzone
	outputScale     float32
	outputLimit     ValueLimit
}

var (
	DefaultSingleAxis = SingleAxis{
		inputMultiplier: 1,
		deadzone:        DefaultSymmetric,
		outputScale:     1,
	}
	NoDeadzoneSingleAxis = SingleAxis{
		inputMultiplier: 1,
		deadzone:        NoDeadzone,
		outputScale:     1,
	}
)

// WithSensitivity sets the magnitude of the input multiplier and keeps
// its sign.
func (s SingleAxis) WithSensitivity(sensitivity float32) SingleAxis {
	s.inputMultiplier = common.Signum(s.inputMultiplier) * common.Abs(sensitivity)
	return s
}

// WithInverted flips the sign of the input multiplier.
func (s SingleAxis) WithInverted() SingleAxis {
	s.inputMultiplier = -s.inputMultiplier
	return s
}

func (s SingleAxis) WithInputLimit(limit ValueLimit) SingleAxis {
	s.inputLimit = limit
	return s
}

func (s SingleAxis) WithNormalizer(n Normalizer) SingleAxis {
	s.normalizer = n
	return s
}

func (s SingleAxis) WithDeadzone(d Deadzone) SingleAxis {
	s.deadzone = d
	return s
}

func (s SingleAxis) WithSymmetricDeadzone(threshold float32) SingleAxis {
	return s.WithDeadzone(Symmetric(threshold))
}

func (s SingleAxis) WithOutputScale(scale float32) SingleAxis {
	s.outputScale = scale
	return s
}

func (s SingleAxis) WithOutputLimit(limit ValueLimit) SingleAxis {
	s.outputLimit = limit
	return s
}

func (s SingleAxis) InputMultiplier() float32 { return s.inputMultiplier }
func (s SingleAxis) InputLimit() ValueLimit   { return s.inputLimit }
func (s SingleAxis) Normalizer() Normalizer   { return s.normalizer }
func (s SingleAxis) Deadzone() Deadzone       { return s.deadzone }
func (s SingleAxis) OutputScale() float32     { return s.outputScale }
func (s SingleAxis) OutputLimit() ValueLimit  { return s.outputLimit }

func (s SingleAxis) Value(value float32) float32 {
	value = s.inputMultiplier * value
	value = s.inputLimit.Clamp(value)
	value = s.normalizer.Normalize(value)
	value = s.deadzone.Value(value)
	value = s.outputScale * value
	return s.outputLimit.Clamp(value)
}

// AsProcessor lets the settings sit inside an axis.Pipeline.
func (s SingleAxis) AsProcessor() axis.Processor {
	return axis.Custom{Name: s.String(), Func: s.Value}
}

func (s SingleAxis) String() string {
	return fmt.Sprintf("SingleAxis{multiplier: %g, input: %s, normalizer: %s, deadzone: %s, scale: %g, output: %s}",
		s.inputMultiplier, s.inputLimit, s.normalizer, s.deadzone, s.outputScale, s.outputLimit)
}
