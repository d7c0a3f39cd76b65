package axis

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Exclusion zeroes values within [negativeMax, positiveMin] and leaves
// everything else untouched.
type Exclusion struct {
	negativeMax float32
	positiveMin float32
}

// ZeroExclusion excludes only 0.
var ZeroExclusion = Exclusion{}

func DefaultExclusion() Exclusion {
	return Exclusion{negativeMax: -0.1, positiveMin: 0.1}
}

// NewExclusion panics unless negativeMax <= 0 <= positiveMin.
func NewExclusion(negativeMax, positiveMin float32) Exclusion {
	if !(negativeMax <= 0) {
		panic(fmt.Sprintf("axis: exclusion negative max %v is positive", negativeMax))
	}
	if !(positiveMin >= 0) {
		panic(fmt.Sprintf("axis: exclusion positive min %v is negative", positiveMin))
	}
	return Exclusion{negativeMax: negativeMax, positiveMin: positiveMin}
}

// MagnitudeExclusion returns the band [-threshold, threshold].
func MagnitudeExclusion(threshold float32) Exclusion {
	return NewExclusion(-threshold, threshold)
}

func (e Exclusion) Min() float32 { return e.negativeMax }
func (e Exclusion) Max() float32 { return e.positiveMin }

func (e Exclusion) MinMax() (float32, float32) {
	return e.negativeMax, e.positiveMin
}

func (e Exclusion) Contains(value float32) bool {
	return e.negativeMax <= value && value <= e.positiveMin
}

func (e Exclusion) Exclude(value float32) float32 {
	if e.Contains(value) {
		return 0
	}
	return value
}

func (e Exclusion) Process(value float32) float32 {
	return e.Exclude(value)
}

// Scaled returns a DeadZone that rescales the livezone around e.
func (e Exclusion) Scaled() DeadZone {
	return newDeadZone(e)
}

func (e Exclusion) String() string {
	return fmt.Sprintf("Exclusion[%g, %g]", e.negativeMax, e.positiveMin)
}

func (e Exclusion) ExtendDual() DualExclusion {
	return DualExclusion{x: e, y: e}
}

func (e Exclusion) ExtendDualOnlyX() DualExclusion {
	return DualExclusion{x: e, y: ZeroExclusion}
}

func (e Exclusion) ExtendDualOnlyY() DualExclusion {
	return DualExclusion{x: ZeroExclusion, y: e}
}

func (e Exclusion) ExtendDualWithX(x Exclusion) DualExclusion {
	return DualExclusion{x: x, y: e}
}

func (e Exclusion) ExtendDualWithY(y Exclusion) DualExclusion {
	return DualExclusion{x: e, y: y}
}

func (Exclusion) isProcessor() {}

// DualExclusion applies an Exclusion to each axis, a cross-shaped band.
type DualExclusion struct {
	x Exclusion
	y Exclusion
}

var ZeroDualExclusion = DualExclusion{}

func DefaultDualExclusion() DualExclusion {
	return DefaultExclusion().ExtendDual()
}

func FromExclusions(x, y Exclusion) DualExclusion {
	return DualExclusion{x: x, y: y}
}

func NewDualExclusion(xNegativeMax, xPositiveMin, yNegativeMax, yPositiveMin float32) DualExclusion {
	return DualExclusion{
		x: NewExclusion(xNegativeMax, xPositiveMin),
		y: NewExclusion(yNegativeMax, yPositiveMin),
	}
}

func DualExclusionAll(negativeMax, positiveMin float32) DualExclusion {
	return NewExclusion(negativeMax, positiveMin).ExtendDual()
}

func DualExclusionOnlyX(negativeMax, positiveMin float32) DualExclusion {
	return NewExclusion(negativeMax, positiveMin).ExtendDualOnlyX()
}

func DualExclusionOnlyY(negativeMax, positiveMin float32) DualExclusion {
	return NewExclusion(negativeMax, positiveMin).ExtendDualOnlyY()
}

func MagnitudeDualExclusion(thresholdX, thresholdY float32) DualExclusion {
	return DualExclusion{x: MagnitudeExclusion(thresholdX), y: MagnitudeExclusion(thresholdY)}
}

func MagnitudeDualExclusionAll(threshold float32) DualExclusion {
	return MagnitudeExclusion(threshold).ExtendDual()
}

func MagnitudeDualExclusionOnlyX(threshold float32) DualExclusion {
	return MagnitudeExclusion(threshold).ExtendDualOnlyX()
}

func MagnitudeDualExclusionOnlyY(threshold float32) DualExclusion {
	return MagnitudeExclusion(threshold).ExtendDualOnlyY()
}

func (e DualExclusion) X() Exclusion { return e.x }
func (e DualExclusion) Y() Exclusion { return e.y }

func (e DualExclusion) Contains(value mgl32.Vec2) [2]bool {
	return [2]bool{e.x.Contains(value.X()), e.y.Contains(value.Y())}
}

func (e DualExclusion) Exclude(value mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{e.x.Exclude(value.X()), e.y.Exclude(value.Y())}
}

func (e DualExclusion) Process(value mgl32.Vec2) mgl32.Vec2 {
	return e.Exclude(value)
}

func (e DualExclusion) Scaled() DualDeadZone {
	return DualDeadZone{x: e.x.Scaled(), y: e.y.Scaled()}
}

func (e DualExclusion) String() string {
	return fmt.Sprintf("DualExclusion{x: %s, y: %s}", e.x, e.y)
}

func (DualExclusion) isDualProcessor() {}

// CircleExclusion zeroes pairs whose length is within radius.
type CircleExclusion struct {
	radiusSquared float32
}

var ZeroCircleExclusion = CircleExclusion{}

func DefaultCircleExclusion() CircleExclusion {
	return NewCircleExclusion(0.1)
}

// NewCircleExclusion panics if radius < 0.
func NewCircleExclusion(radius float32) CircleExclusion {
	if !(radius >= 0) {
		panic(fmt.Sprintf("axis: circle exclusion radius %v is negative", radius))
	}
	return CircleExclusion{radiusSquared: radius * radius}
}

func (e CircleExclusion) Radius() float32 {
	return sqrt32(e.radiusSquared)
}

func (e CircleExclusion) Contains(value mgl32.Vec2) bool {
	return value.LenSqr() <= e.radiusSquared
}

func (e CircleExclusion) Exclude(value mgl32.Vec2) mgl32.Vec2 {
	if e.Contains(value) {
		return Vec2Zero
	}
	return value
}

func (e CircleExclusion) Process(value mgl32.Vec2) mgl32.Vec2 {
	return e.Exclude(value)
}

func (e CircleExclusion) Scaled() CircleDeadZone {
	return NewCircleDeadZone(e.Radius())
}

func (e CircleExclusion) String() string {
	return fmt.Sprintf("CircleExclusion{radius: %g}", e.Radius())
}

func (CircleExclusion) isDualProcessor() {}
