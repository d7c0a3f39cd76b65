package axis

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Inverted flips the sign of a single-axis value.
type Inverted struct{}

func (Inverted) Process(value float32) float32 { return -value }
func (Inverted) String() string                { return "Inverted" }
func (Inverted) isProcessor()                  {}

// Sensitivity scales a single-axis value. Negative factors also invert,
// zero disables the axis.
type Sensitivity float32

func (s Sensitivity) Process(value float32) float32 { return float32(s) * value }
func (s Sensitivity) String() string                { return fmt.Sprintf("Sensitivity(%g)", float32(s)) }
func (Sensitivity) isProcessor()                    {}

// DualInverted multiplies each axis by 1 or -1.
type DualInverted struct {
	signs mgl32.Vec2
}

var (
	DualInvertedAll   = DualInverted{signs: mgl32.Vec2{-1, -1}}
	DualInvertedOnlyX = DualInverted{signs: mgl32.Vec2{-1, 1}}
	DualInvertedOnlyY = DualInverted{signs: mgl32.Vec2{1, -1}}
	DualInvertedNone  = DualInverted{signs: mgl32.Vec2{1, 1}}
)

// NewDualInverted inverts the axes whose flag is set.
func NewDualInverted(x, y bool) DualInverted {
	signs := mgl32.Vec2{1, 1}
	if x {
		signs[0] = -1
	}
	if y {
		signs[1] = -1
	}
	return DualInverted{signs: signs}
}

func (i DualInverted) IsInverted() [2]bool {
	return [2]bool{i.signs[0] < 0, i.signs[1] < 0}
}

func (i DualInverted) Process(value mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{i.signs[0] * value[0], i.signs[1] * value[1]}
}

func (i DualInverted) String() string {
	inv := i.IsInverted()
	return fmt.Sprintf("DualInverted{x: %t, y: %t}", inv[0], inv[1])
}

func (DualInverted) isDualProcessor() {}

// DualSensitivity scales each axis by its own factor.
type DualSensitivity struct {
	scale mgl32.Vec2
}

func NewDualSensitivity(x, y float32) DualSensitivity {
	return DualSensitivity{scale: mgl32.Vec2{x, y}}
}

func DualSensitivityAll(s float32) DualSensitivity {
	return NewDualSensitivity(s, s)
}

func DualSensitivityOnlyX(s float32) DualSensitivity {
	return NewDualSensitivity(s, 1)
}

func DualSensitivityOnlyY(s float32) DualSensitivity {
	return NewDualSensitivity(1, s)
}

func (s DualSensitivity) Scale() mgl32.Vec2 { return s.scale }

func (s DualSensitivity) Process(value mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{s.scale[0] * value[0], s.scale[1] * value[1]}
}

func (s DualSensitivity) String() string {
	return fmt.Sprintf("DualSensitivity{x: %g, y: %g}", s.scale[0], s.scale[1])
}

func (DualSensitivity) isDualProcessor() {}
