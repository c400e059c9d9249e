package common

import "math"

// Lerp3 interpolates between a and b as a*(1-t) + b*t, computed in float64.
// The form is exact at both ends: t = 0 returns a and t = 1 returns b bit-for-bit.
//
// Parameters:
//   - a: the start point
//   - b: the end point
//   - t: interpolation factor, normally in [0, 1]
//
// Returns:
//   - [3]float32: the interpolated point
func Lerp3(a, b [3]float32, t float64) [3]float32 {
	var out [3]float32
	for i := range 3 {
		out[i] = float32(float64(a[i])*(1-t) + float64(b[i])*t)
	}
	return out
}

// Sub3 returns a - b.
func Sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Add3 returns a + b.
func Add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Scale3 returns v * s.
func Scale3(v [3]float32, s float32) [3]float32 {
	return [3]float32{v[0] * s, v[1] * s, v[2] * s}
}

// Dot3 returns the dot product of a and b.
func Dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Length3 returns the Euclidean length of v.
func Length3(v [3]float32) float32 {
	return float32(math.Sqrt(float64(Dot3(v, v))))
}

// Normalize3 returns v scaled to unit length, or the zero vector if v is (nearly) zero.
func Normalize3(v [3]float32) [3]float32 {
	l := Length3(v)
	if l < 1e-8 {
		return [3]float32{}
	}
	return Scale3(v, 1/l)
}

// Clamp32 restricts v to [lo, hi]. If lo > hi the midpoint of the two is returned.
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp32(v, lo, hi float32) float32 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
