package settings

import (
	"fmt"

	"github.com/milk9111/axisinput/common"
)

// Normalizer remaps [inputMin, inputMax] linearly onto
// [outputMin, outputMax]. Inputs outside the range stick to the nearest
// output bound. The zero value performs no remapping.
type Normalizer struct {
	minMax           bool
	inputMin         float32
	inputRangeWidth  float32
	recipInputWidth  float32
	outputMin        float32
	outputRangeWidth float32
}

var NoNormalizer = Normalizer{}

// StandardMinMax maps the input range onto [0, 1].
func StandardMinMax(inputMin, inputMax float32) Normalizer {
	return CustomMinMax(inputMin, inputMax, 0, 1)
}

// SymmetricMinMax maps the input range onto [-1, 1].
func SymmetricMinMax(inputMin, inputMax float32) Normalizer {
	return CustomMinMax(inputMin, inputMax, -1, 1)
}

func CustomMinMax(inputMin, inputMax, outputMin, outputMax float32) Normalizer {
	if !(inputMin <= inputMax) {
		panic(fmt.Sprintf("settings: normalizer input min %v greater than max %v", inputMin, inputMax))
	}
	width := inputMax - inputMin
	var recip float32
	if width > 0 {
		recip = 1 / width
	}
	return Normalizer{
		minMax:           true,
		inputMin:         inputMin,
		inputRangeWidth:  width,
		recipInputWidth:  recip,
		outputMin:        outputMin,
		outputRangeWidth: outputMax - outputMin,
	}
}

func (n Normalizer) Normalize(value float32) float32 {
	if !n.minMax {
		return value
	}
	clamped := common.Clamp(value-n.inputMin, 0, n.inputRangeWidth)
	return clamped*n.recipInputWidth*n.outputRangeWidth + n.outputMin
}

func (n Normalizer) IsNone() bool { return !n.minMax }

// Ranges returns the input and output ranges.
func (n Normalizer) Ranges() (inMin, inMax, outMin, outMax float32) {
	return n.inputMin, n.inputMin + n.inputRangeWidth, n.outputMin, n.outputMin + n.outputRangeWidth
}

func (n Normalizer) String() string {
	if !n.minMax {
		return "NoNormalizer"
	}
	inMin, inMax, outMin, outMax := n.Ranges()
	return fmt.Sprintf("MinMax([%g, %g] -> [%g, %g])", inMin, inMax, outMin, outMax)
}
