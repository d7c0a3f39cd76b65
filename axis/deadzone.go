package axis

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/axisinput/common"
)

// DeadZone excludes a band around zero and linearly rescales the
// remaining range up to the unit bounds [-1, 1] onto [-1, 1].
type DeadZone struct {
	exclusion          Exclusion
	livezoneLowerRecip float32
	livezoneUpperRecip float32
}

// ZeroDeadZone only clamps to [-1, 1].
var ZeroDeadZone = DeadZone{exclusion: ZeroExclusion, livezoneLowerRecip: 1, livezoneUpperRecip: 1}

func DefaultDeadZone() DeadZone {
	return DefaultExclusion().Scaled()
}

func NewDeadZone(negativeMax, positiveMin float32) DeadZone {
	return NewExclusion(negativeMax, positiveMin).Scaled()
}

func MagnitudeDeadZone(threshold float32) DeadZone {
	return MagnitudeExclusion(threshold).Scaled()
}

func newDeadZone(e Exclusion) DeadZone {
	bounds := DefaultBounds()
	return DeadZone{
		exclusion:          e,
		livezoneLowerRecip: recip(e.negativeMax - bounds.min),
		livezoneUpperRecip: recip(bounds.max - e.positiveMin),
	}
}

func (d DeadZone) Exclusion() Exclusion { return d.exclusion }

// Bounds is always the unit interval.
func (d DeadZone) Bounds() Bounds { return DefaultBounds() }

func (d DeadZone) LivezoneLowerMinMax() (float32, float32) {
	return -1, d.exclusion.negativeMax
}

func (d DeadZone) LivezoneUpperMinMax() (float32, float32) {
	return d.exclusion.positiveMin, 1
}

func (d DeadZone) WithinExclusion(value float32) bool {
	return d.exclusion.Contains(value)
}

func (d DeadZone) WithinBounds(value float32) bool {
	return d.Bounds().Contains(value)
}

func (d DeadZone) WithinLivezoneLower(value float32) bool {
	min, max := d.LivezoneLowerMinMax()
	return min <= value && value <= max
}

func (d DeadZone) WithinLivezoneUpper(value float32) bool {
	min, max := d.LivezoneUpperMinMax()
	return min <= value && value <= max
}

// Normalize clamps value to [-1, 1], zeroes the exclusion band and maps
// each livezone linearly onto [-1, 0] or [0, 1].
func (d DeadZone) Normalize(value float32) float32 {
	if value <= 0 {
		lower, deadzone := d.LivezoneLowerMinMax()
		distance := common.Min(common.Max(value, lower)-deadzone, 0)
		return snapUnit(distance * d.livezoneLowerRecip)
	}
	deadzone, upper := d.LivezoneUpperMinMax()
	distance := common.Max(common.Min(value, upper)-deadzone, 0)
	return snapUnit(distance * d.livezoneUpperRecip)
}

func (d DeadZone) Process(value float32) float32 {
	return d.Normalize(value)
}

func (d DeadZone) String() string {
	return fmt.Sprintf("DeadZone[%g, %g]", d.exclusion.negativeMax, d.exclusion.positiveMin)
}

func (d DeadZone) ExtendDual() DualDeadZone {
	return DualDeadZone{x: d, y: d}
}

func (d DeadZone) ExtendDualOnlyX() DualDeadZone {
	return DualDeadZone{x: d, y: ZeroDeadZone}
}

func (d DeadZone) ExtendDualOnlyY() DualDeadZone {
	return DualDeadZone{x: ZeroDeadZone, y: d}
}

func (d DeadZone) ExtendDualWithX(x DeadZone) DualDeadZone {
	return DualDeadZone{x: x, y: d}
}

func (d DeadZone) ExtendDualWithY(y DeadZone) DualDeadZone {
	return DualDeadZone{x: d, y: y}
}

func (DeadZone) isProcessor() {}

// snapUnit rounds results within one epsilon of ±1 onto ±1.
func snapUnit(v float32) float32 {
	switch {
	case v >= 1-common.Epsilon:
		return 1
	case v <= -1+common.Epsilon:
		return -1
	}
	return v
}

// DualDeadZone normalizes each axis independently, the square/cross
// shape. Diagonals can reach a length above 1.
type DualDeadZone struct {
	x DeadZone
	y DeadZone
}

var ZeroDualDeadZone = DualDeadZone{x: ZeroDeadZone, y: ZeroDeadZone}

func DefaultDualDeadZone() DualDeadZone {
	return DefaultDeadZone().ExtendDual()
}

func FromDeadZones(x, y DeadZone) DualDeadZone {
	return DualDeadZone{x: x, y: y}
}

func NewDualDeadZone(xNegativeMax, xPositiveMin, yNegativeMax, yPositiveMin float32) DualDeadZone {
	return DualDeadZone{
		x: NewDeadZone(xNegativeMax, xPositiveMin),
		y: NewDeadZone(yNegativeMax, yPositiveMin),
	}
}

func DualDeadZoneAll(negativeMax, positiveMin float32) DualDeadZone {
	return NewDeadZone(negativeMax, positiveMin).ExtendDual()
}

func DualDeadZoneOnlyX(negativeMax, positiveMin float32) DualDeadZone {
	return NewDeadZone(negativeMax, positiveMin).ExtendDualOnlyX()
}

func DualDeadZoneOnlyY(negativeMax, positiveMin float32) DualDeadZone {
	return NewDeadZone(negativeMax, positiveMin).ExtendDualOnlyY()
}

func MagnitudeDualDeadZone(thresholdX, thresholdY float32) DualDeadZone {
	return DualDeadZone{x: MagnitudeDeadZone(thresholdX), y: MagnitudeDeadZone(thresholdY)}
}

func MagnitudeDualDeadZoneAll(threshold float32) DualDeadZone {
	return MagnitudeDeadZone(threshold).ExtendDual()
}

func MagnitudeDualDeadZoneOnlyX(threshold float32) DualDeadZone {
	return MagnitudeDeadZone(threshold).ExtendDualOnlyX()
}

func MagnitudeDualDeadZoneOnlyY(threshold float32) DualDeadZone {
	return MagnitudeDeadZone(threshold).ExtendDualOnlyY()
}

func (d DualDeadZone) X() DeadZone { return d.x }
func (d DualDeadZone) Y() DeadZone { return d.y }

func (d DualDeadZone) Exclusion() DualExclusion {
	return DualExclusion{x: d.x.exclusion, y: d.y.exclusion}
}

func (d DualDeadZone) Bounds() DualBounds {
	return DefaultDualBounds()
}

func (d DualDeadZone) WithinExclusion(value mgl32.Vec2) [2]bool {
	return [2]bool{d.x.WithinExclusion(value.X()), d.y.WithinExclusion(value.Y())}
}

func (d DualDeadZone) WithinBounds(value mgl32.Vec2) [2]bool {
	return [2]bool{d.x.WithinBounds(value.X()), d.y.WithinBounds(value.Y())}
}

func (d DualDeadZone) Normalize(value mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{d.x.Normalize(value.X()), d.y.Normalize(value.Y())}
}

func (d DualDeadZone) Process(value mgl32.Vec2) mgl32.Vec2 {
	return d.Normalize(value)
}

func (d DualDeadZone) String() string {
	return fmt.Sprintf("DualDeadZone{x: %s, y: %s}", d.x, d.y)
}

func (DualDeadZone) isDualProcessor() {}

// CircleDeadZone excludes a disc around the origin and rescales the
// length between radius and 1 onto [0, 1]. The direction is unchanged.
type CircleDeadZone struct {
	radius        float32
	livezoneRecip float32
}

var ZeroCircleDeadZone = CircleDeadZone{radius: 0, livezoneRecip: 1}

func DefaultCircleDeadZone() CircleDeadZone {
	return NewCircleDeadZone(0.1)
}

// NewCircleDeadZone panics if radius < 0.
func NewCircleDeadZone(radius float32) CircleDeadZone {
	if !(radius >= 0) {
		panic(fmt.Sprintf("axis: circle deadzone radius %v is negative", radius))
	}
	return CircleDeadZone{radius: radius, livezoneRecip: recip(1 - radius)}
}

func (d CircleDeadZone) Radius() float32 { return d.radius }

func (d CircleDeadZone) Exclusion() CircleExclusion {
	return NewCircleExclusion(d.radius)
}

func (d CircleDeadZone) Bounds() CircleBounds {
	return DefaultCircleBounds()
}

func (d CircleDeadZone) LivezoneMinMax() (float32, float32) {
	return d.radius, 1
}

func (d CircleDeadZone) WithinExclusion(value mgl32.Vec2) bool {
	return value.LenSqr() <= d.radius*d.radius
}

func (d CircleDeadZone) WithinBounds(value mgl32.Vec2) bool {
	return value.LenSqr() <= 1
}

func (d CircleDeadZone) WithinLivezone(value mgl32.Vec2) bool {
	lenSq := value.LenSqr()
	return d.radius*d.radius <= lenSq && lenSq <= 1
}

func (d CircleDeadZone) Normalize(value mgl32.Vec2) mgl32.Vec2 {
	length := hypot(value)
	if length == 0 {
		return Vec2Zero
	}
	deadzone, bound := d.LivezoneMinMax()
	offset := math.Max(math.Min(length, float64(bound))-float64(deadzone), 0)
	return scaleTo(value, offset*float64(d.livezoneRecip))
}

func (d CircleDeadZone) Process(value mgl32.Vec2) mgl32.Vec2 {
	return d.Normalize(value)
}

func (d CircleDeadZone) String() string {
	return fmt.Sprintf("CircleDeadZone{radius: %g}", d.radius)
}

func (CircleDeadZone) isDualProcessor() {}

// NormalizeLivezone zeroes |value| up to threshold and maps the rest of
// the unit range onto [0, 1], keeping the sign.
func NormalizeLivezone(value, threshold float32) float32 {
	width := 1 - threshold
	alive := common.Abs(value) - threshold
	switch {
	case alive <= common.Epsilon:
		return 0
	case width-alive <= common.Epsilon:
		return common.Signum(value)
	}
	return alive / width * common.Signum(value)
}

// EllipseDeadZone uses an elliptical exclusion with per-axis radii. Each
// axis is normalized against the ellipse point in the input's direction.
type EllipseDeadZone struct {
	radiusX float32
	radiusY float32
}

// NewEllipseDeadZone panics if either radius is negative.
func NewEllipseDeadZone(radiusX, radiusY float32) EllipseDeadZone {
	if !(radiusX >= 0 && radiusY >= 0) {
		panic(fmt.Sprintf("axis: ellipse deadzone radii (%v, %v) must not be negative", radiusX, radiusY))
	}
	return EllipseDeadZone{radiusX: radiusX, radiusY: radiusY}
}

func (d EllipseDeadZone) Radii() (float32, float32) {
	return d.radiusX, d.radiusY
}

func (d EllipseDeadZone) Process(value mgl32.Vec2) mgl32.Vec2 {
	x, y := value.X(), value.Y()
	// Measured from +Y, so sin follows x and cos follows y.
	angle := atan2(x, y)
	closestX := d.radiusX * absSin(angle)
	closestY := d.radiusY * absCos(angle)
	return mgl32.Vec2{NormalizeLivezone(x, closestX), NormalizeLivezone(y, closestY)}
}

func (d EllipseDeadZone) String() string {
	return fmt.Sprintf("EllipseDeadZone{radius_x: %g, radius_y: %g}", d.radiusX, d.radiusY)
}

func (EllipseDeadZone) isDualProcessor() {}

// RoundedSquareDeadZone is a cross-shaped exclusion whose inner corners
// are rounded by radiusX/radiusY.
type RoundedSquareDeadZone struct {
	thresholdX float32
	thresholdY float32
	radiusX    float32
	radiusY    float32
}

// DefaultRoundedSquareDeadZone uses 0.1 thresholds and corners of a quarter
// of that.
func DefaultRoundedSquareDeadZone() RoundedSquareDeadZone {
	return NewRoundedSquareDeadZone(0.1, 0.1, 0.025, 0.025)
}

// NewRoundedSquareDeadZone panics if any parameter is negative.
func NewRoundedSquareDeadZone(thresholdX, thresholdY, radiusX, radiusY float32) RoundedSquareDeadZone {
	if !(thresholdX >= 0 && thresholdY >= 0) {
		panic(fmt.Sprintf("axis: rounded square thresholds (%v, %v) must not be negative", thresholdX, thresholdY))
	}
	if !(radiusX >= 0 && radiusY >= 0) {
		panic(fmt.Sprintf("axis: rounded square radii (%v, %v) must not be negative", radiusX, radiusY))
	}
	return RoundedSquareDeadZone{thresholdX: thresholdX, thresholdY: thresholdY, radiusX: radiusX, radiusY: radiusY}
}

func (d RoundedSquareDeadZone) Thresholds() (float32, float32) {
	return d.thresholdX, d.thresholdY
}

func (d RoundedSquareDeadZone) Radii() (float32, float32) {
	return d.radiusX, d.radiusY
}

func (d RoundedSquareDeadZone) Process(value mgl32.Vec2) mgl32.Vec2 {
	x, y := value.X(), value.Y()
	absX, absY := common.Abs(x), common.Abs(y)
	angle := atan2(absX-d.thresholdX, absY-d.thresholdY)
	closestX := cornerThreshold(d.thresholdX, absSin(angle), d.radiusX, absY > d.thresholdY)
	closestY := cornerThreshold(d.thresholdY, absCos(angle), d.radiusY, absX > d.thresholdX)
	return mgl32.Vec2{NormalizeLivezone(x, closestX), NormalizeLivezone(y, closestY)}
}

func cornerThreshold(threshold, factor, radius float32, nearCorner bool) float32 {
	if nearCorner {
		return threshold + radius*factor
	}
	return threshold + radius
}

func (d RoundedSquareDeadZone) String() string {
	return fmt.Sprintf("RoundedSquareDeadZone{threshold: (%g, %g), radius: (%g, %g)}",
		d.thresholdX, d.thresholdY, d.radiusX, d.radiusY)
}

func (RoundedSquareDeadZone) isDualProcessor() {}
