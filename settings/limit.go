package settings

import (
	"fmt"
	"math"

	"github.com/milk9111/axisinput/common"
)

type limitKind uint8

const (
	limitNone limitKind = iota
	limitAtLeast
	limitAtMost
	limitRange
)

// ValueLimit restricts a value from below, above, both or not at all.
type ValueLimit struct {
	kind limitKind
	min  float32
	max  float32
}

// NoLimit passes every value through.
var NoLimit = ValueLimit{}

func AtLeast(min float32) ValueLimit {
	return ValueLimit{kind: limitAtLeast, min: min, max: math.MaxFloat32}
}

func AtMost(max float32) ValueLimit {
	return ValueLimit{kind: limitAtMost, min: -math.MaxFloat32, max: max}
}

// Range panics if min > max.
func Range(min, max float32) ValueLimit {
	if !(min <= max) {
		panic(fmt.Sprintf("settings: limit min %v greater than max %v", min, max))
	}
	return ValueLimit{kind: limitRange, min: min, max: max}
}

func (l ValueLimit) Clamp(value float32) float32 {
	switch l.kind {
	case limitAtLeast:
		return common.Max(value, l.min)
	case limitAtMost:
		return common.Min(value, l.max)
	case limitRange:
		return common.Clamp(value, l.min, l.max)
	}
	return value
}

// Bounds returns the limit as [min, max] and false for NoLimit.
func (l ValueLimit) Bounds() (float32, float32, bool) {
	if l.kind == limitNone {
		return 0, 0, false
	}
	return l.min, l.max, true
}

func (l ValueLimit) IsNone() bool { return l.kind == limitNone }

func (l ValueLimit) String() string {
	switch l.kind {
	case limitAtLeast:
		return fmt.Sprintf("AtLeast(%g)", l.min)
	case limitAtMost:
		return fmt.Sprintf("AtMost(%g)", l.max)
	case limitRange:
		return fmt.Sprintf("Range(%g, %g)", l.min, l.max)
	}
	return "NoLimit"
}
