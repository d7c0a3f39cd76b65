package common

import "math"

// Epsilon is the float32 machine epsilon.
const Epsilon float32 = 1.1920929e-7

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// InverseLerp returns where v sits between a and b, 0 at a and 1 at b.
func InverseLerp(a, b, v float32) float32 {
	return (v - a) / (b - a)
}

func Clamp(v, lo, hi float32) float32 {
	return Min(Max(v, lo), hi)
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func Abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// Signum returns 1 for positive values (and +0), -1 for negative values (and -0).
func Signum(v float32) float32 {
	if math.Signbit(float64(v)) {
		return -1
	}
	return 1
}

// NearlyEqual reports whether a and b differ by at most tol.
func NearlyEqual(a, b, tol float32) bool {
	return Abs(a-b) <= tol
}
