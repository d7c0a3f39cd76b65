package axis

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/axisinput/common"
)

// Bounds clamps a single-axis value to the closed interval [min, max].
type Bounds struct {
	min float32
	max float32
}

// FullRangeBounds accepts every finite float32.
var FullRangeBounds = Bounds{min: -math.MaxFloat32, max: math.MaxFloat32}

// DefaultBounds is the unit interval [-1, 1].
func DefaultBounds() Bounds {
	return Bounds{min: -1, max: 1}
}

// NewBounds panics if min > max.
func NewBounds(min, max float32) Bounds {
	if !(min <= max) {
		panic(fmt.Sprintf("axis: bounds min %v greater than max %v", min, max))
	}
	return Bounds{min: min, max: max}
}

// MagnitudeBounds returns [-threshold, threshold].
func MagnitudeBounds(threshold float32) Bounds {
	return NewBounds(-threshold, threshold)
}

func BoundsAtLeast(min float32) Bounds {
	return NewBounds(min, math.MaxFloat32)
}

func BoundsAtMost(max float32) Bounds {
	return NewBounds(-math.MaxFloat32, max)
}

func (b Bounds) Min() float32 { return b.min }
func (b Bounds) Max() float32 { return b.max }

func (b Bounds) MinMax() (float32, float32) {
	return b.min, b.max
}

func (b Bounds) Contains(value float32) bool {
	return b.min <= value && value <= b.max
}

func (b Bounds) Clamp(value float32) float32 {
	return common.Max(common.Min(value, b.max), b.min)
}

func (b Bounds) Process(value float32) float32 {
	return b.Clamp(value)
}

func (b Bounds) String() string {
	return fmt.Sprintf("Bounds[%g, %g]", b.min, b.max)
}

// ExtendDual uses b on both axes.
func (b Bounds) ExtendDual() DualBounds {
	return DualBounds{x: b, y: b}
}

func (b Bounds) ExtendDualOnlyX() DualBounds {
	return DualBounds{x: b, y: FullRangeBounds}
}

func (b Bounds) ExtendDualOnlyY() DualBounds {
	return DualBounds{x: FullRangeBounds, y: b}
}

// ExtendDualWithX uses x on the X axis and b on the Y axis.
func (b Bounds) ExtendDualWithX(x Bounds) DualBounds {
	return DualBounds{x: x, y: b}
}

// ExtendDualWithY uses b on the X axis and y on the Y axis.
func (b Bounds) ExtendDualWithY(y Bounds) DualBounds {
	return DualBounds{x: b, y: y}
}

func (Bounds) isProcessor() {}

// DualBounds clamps each axis of a pair independently, a rectangle.
type DualBounds struct {
	x Bounds
	y Bounds
}

// FullRangeDualBounds leaves both axes unrestricted.
var FullRangeDualBounds = DualBounds{x: FullRangeBounds, y: FullRangeBounds}

func DefaultDualBounds() DualBounds {
	return DefaultBounds().ExtendDual()
}

func FromBounds(x, y Bounds) DualBounds {
	return DualBounds{x: x, y: y}
}

func NewDualBounds(xMin, xMax, yMin, yMax float32) DualBounds {
	return DualBounds{x: NewBounds(xMin, xMax), y: NewBounds(yMin, yMax)}
}

func DualBoundsAll(min, max float32) DualBounds {
	return NewBounds(min, max).ExtendDual()
}

func DualBoundsOnlyX(min, max float32) DualBounds {
	return NewBounds(min, max).ExtendDualOnlyX()
}

func DualBoundsOnlyY(min, max float32) DualBounds {
	return NewBounds(min, max).ExtendDualOnlyY()
}

func MagnitudeDualBounds(thresholdX, thresholdY float32) DualBounds {
	return DualBounds{x: MagnitudeBounds(thresholdX), y: MagnitudeBounds(thresholdY)}
}

func MagnitudeDualBoundsAll(threshold float32) DualBounds {
	return MagnitudeBounds(threshold).ExtendDual()
}

func MagnitudeDualBoundsOnlyX(threshold float32) DualBounds {
	return MagnitudeBounds(threshold).ExtendDualOnlyX()
}

func MagnitudeDualBoundsOnlyY(threshold float32) DualBounds {
	return MagnitudeBounds(threshold).ExtendDualOnlyY()
}

func DualBoundsAtLeast(xMin, yMin float32) DualBounds {
	return DualBounds{x: BoundsAtLeast(xMin), y: BoundsAtLeast(yMin)}
}

func DualBoundsAtLeastAll(min float32) DualBounds {
	return BoundsAtLeast(min).ExtendDual()
}

func DualBoundsAtLeastOnlyX(min float32) DualBounds {
	return BoundsAtLeast(min).ExtendDualOnlyX()
}

func DualBoundsAtLeastOnlyY(min float32) DualBounds {
	return BoundsAtLeast(min).ExtendDualOnlyY()
}

func DualBoundsAtMost(xMax, yMax float32) DualBounds {
	return DualBounds{x: BoundsAtMost(xMax), y: BoundsAtMost(yMax)}
}

func DualBoundsAtMostAll(max float32) DualBounds {
	return BoundsAtMost(max).ExtendDual()
}

func DualBoundsAtMostOnlyX(max float32) DualBounds {
	return BoundsAtMost(max).ExtendDualOnlyX()
}

func DualBoundsAtMostOnlyY(max float32) DualBounds {
	return BoundsAtMost(max).ExtendDualOnlyY()
}

func (b DualBounds) X() Bounds { return b.x }
func (b DualBounds) Y() Bounds { return b.y }

// Contains reports per axis whether the value lies within the bounds.
func (b DualBounds) Contains(value mgl32.Vec2) [2]bool {
	return [2]bool{b.x.Contains(value.X()), b.y.Contains(value.Y())}
}

func (b DualBounds) Clamp(value mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{b.x.Clamp(value.X()), b.y.Clamp(value.Y())}
}

func (b DualBounds) Process(value mgl32.Vec2) mgl32.Vec2 {
	return b.Clamp(value)
}

func (b DualBounds) String() string {
	return fmt.Sprintf("DualBounds{x: %s, y: %s}", b.x, b.y)
}

func (DualBounds) isDualProcessor() {}

// CircleBounds limits the length of a pair, keeping its direction.
type CircleBounds struct {
	radius float32
}

var FullRangeCircleBounds = CircleBounds{radius: math.MaxFloat32}

func DefaultCircleBounds() CircleBounds {
	return CircleBounds{radius: 1}
}

// NewCircleBounds panics if radius < 0.
func NewCircleBounds(radius float32) CircleBounds {
	if !(radius >= 0) {
		panic(fmt.Sprintf("axis: circle bounds radius %v is negative", radius))
	}
	return CircleBounds{radius: radius}
}

func (b CircleBounds) Radius() float32 { return b.radius }

func (b CircleBounds) Contains(value mgl32.Vec2) bool {
	return hypot(value) <= float64(b.radius)
}

func (b CircleBounds) Clamp(value mgl32.Vec2) mgl32.Vec2 {
	if b.Contains(value) {
		return value
	}
	return scaleTo(value, float64(b.radius))
}

func (b CircleBounds) Process(value mgl32.Vec2) mgl32.Vec2 {
	return b.Clamp(value)
}

func (b CircleBounds) String() string {
	return fmt.Sprintf("CircleBounds{radius: %g}", b.radius)
}

func (CircleBounds) isDualProcessor() {}
