package axis

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2Zero is the neutral dual-axis value.
var Vec2Zero = mgl32.Vec2{0, 0}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func atan2(y, x float32) float64 {
	return math.Atan2(float64(y), float64(x))
}

func absSin(angle float64) float32 {
	return float32(math.Abs(math.Sin(angle)))
}

func absCos(angle float64) float32 {
	return float32(math.Abs(math.Cos(angle)))
}

// recip returns 1/width, or 0 for an empty livezone.
func recip(width float32) float32 {
	if width <= 0 {
		return 0
	}
	return 1 / width
}

// hypot is the length of value in float64, finite for any finite value.
func hypot(value mgl32.Vec2) float64 {
	return math.Hypot(float64(value[0]), float64(value[1]))
}

// scaleTo rescales value to the given length keeping its direction.
func scaleTo(value mgl32.Vec2, length float64) mgl32.Vec2 {
	l := hypot(value)
	if l == 0 {
		return Vec2Zero
	}
	k := length / l
	return mgl32.Vec2{float32(float64(value[0]) * k), float32(float64(value[1]) * k)}
}
