package settings

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/axisinput/axis"
	"github.com/milk9111/axisinput/common"
)

const (
	defaultThreshold = 0.1
	livezoneUpper    = 1.0
)

// Deadzone is the single-axis deadzone selection: none, or a symmetric
// band of threshold around zero.
type Deadzone struct {
	symmetric     bool
	threshold     float32
	livezoneWidth float32
	recipLivezone float32
}

var (
	NoDeadzone       = Deadzone{}
	DefaultSymmetric = Symmetric(defaultThreshold)
)

// Symmetric returns NoDeadzone for thresholds <= 0. Thresholds above 1 are
// capped at 1.
func Symmetric(threshold float32) Deadzone {
	if threshold <= 0 {
		return NoDeadzone
	}
	threshold = common.Min(threshold, livezoneUpper)
	width := livezoneUpper - threshold
	var recip float32
	if width > 0 {
		recip = 1 / width
	}
	return Deadzone{symmetric: true, threshold: threshold, livezoneWidth: width, recipLivezone: recip}
}

func (d Deadzone) Threshold() float32 { return d.threshold }
func (d Deadzone) IsNone() bool       { return !d.symmetric }

func (d Deadzone) Value(value float32) float32 {
	if !d.symmetric {
		return value
	}
	alive := common.Abs(value) - d.threshold
	switch {
	case alive <= common.Epsilon:
		return 0
	case d.livezoneWidth-alive <= common.Epsilon:
		return common.Signum(value) * livezoneUpper
	}
	return common.Signum(value) * alive * d.recipLivezone
}

func (d Deadzone) String() string {
	if !d.symmetric {
		return "NoDeadzone"
	}
	return fmt.Sprintf("Symmetric(%g)", d.threshold)
}

type dualDeadzoneKind uint8

const (
	dualNone dualDeadzoneKind = iota
	dualCircle
	dualSquare
	dualRoundedSquare
)

// DualDeadzone is the dual-axis deadzone selection.
type DualDeadzone struct {
	kind          dualDeadzoneKind
	circle        axis.EllipseDeadZone
	x, y          Deadzone
	roundedSquare axis.RoundedSquareDeadZone
}

var (
	NoDualDeadzone       = DualDeadzone{}
	DefaultCircle        = Circle(defaultThreshold, defaultThreshold)
	DefaultSquare        = Square(defaultThreshold, defaultThreshold)
	DefaultRoundedSquare = RoundedSquare(defaultThreshold, defaultThreshold, 0.25*defaultThreshold, 0.25*defaultThreshold)
)

// Circle is an elliptical deadzone with the given radii. It returns
// NoDualDeadzone when both radii are <= 0. Radii are clamped to [0, 1].
func Circle(radiusX, radiusY float32) DualDeadzone {
	if radiusX <= 0 && radiusY <= 0 {
		return NoDualDeadzone
	}
	return DualDeadzone{
		kind:   dualCircle,
		circle: axis.NewEllipseDeadZone(unit(radiusX), unit(radiusY)),
	}
}

// Square applies a symmetric deadzone to each axis.
func Square(thresholdX, thresholdY float32) DualDeadzone {
	return DualDeadzone{kind: dualSquare, x: Symmetric(thresholdX), y: Symmetric(thresholdY)}
}

// RoundedSquare falls back to Circle when both thresholds are <= 0 and to
// Square when both radii are <= 0.
func RoundedSquare(thresholdX, thresholdY, radiusX, radiusY float32) DualDeadzone {
	if thresholdX <= 0 && thresholdY <= 0 {
		return Circle(radiusX, radiusY)
	}
	if radiusX <= 0 && radiusY <= 0 {
		return Square(thresholdX, thresholdY)
	}
	return DualDeadzone{
		kind:          dualRoundedSquare,
		roundedSquare: axis.NewRoundedSquareDeadZone(unit(thresholdX), unit(thresholdY), unit(radiusX), unit(radiusY)),
	}
}

func unit(v float32) float32 {
	return common.Clamp(v, 0, livezoneUpper)
}

func (d DualDeadzone) IsNone() bool { return d.kind == dualNone }

func (d DualDeadzone) Value(value mgl32.Vec2) mgl32.Vec2 {
	switch d.kind {
	case dualCircle:
		return d.circle.Process(value)
	case dualSquare:
		return mgl32.Vec2{d.x.Value(value[0]), d.y.Value(value[1])}
	case dualRoundedSquare:
		return d.roundedSquare.Process(value)
	}
	return value
}

func (d DualDeadzone) String() string {
	switch d.kind {
	case dualCircle:
		rx, ry := d.circle.Radii()
		return fmt.Sprintf("Circle(%g, %g)", rx, ry)
	case dualSquare:
		return fmt.Sprintf("Square(%s, %s)", d.x, d.y)
	case dualRoundedSquare:
		tx, ty := d.roundedSquare.Thresholds()
		rx, ry := d.roundedSquare.Radii()
		return fmt.Sprintf("RoundedSquare(%g, %g, %g, %g)", tx, ty, rx, ry)
	}
	return "NoDualDeadzone"
}
