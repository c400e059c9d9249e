package light

import "github.com/Carmen-Shannon/oxy-roomviz/common"

// DefaultRig returns the lighting used for every room: a soft ambient fill, a key
// light from above the front-right corner and a weaker fill from behind.
//
// Returns:
//   - []Light: ambient, key and fill lights in that order
func DefaultRig() []Light {
	return []Light{
		NewLight(LightTypeAmbient, WithIntensity(0.5)),
		NewLight(LightTypeDirectional, WithSourcePosition(5, 10, 5), WithIntensity(0.8)),
		NewLight(LightTypeDirectional, WithSourcePosition(-5, 8, -10), WithIntensity(0.3)),
	}
}

// Shade applies Lambert lighting from lights to a base color. Back faces are lit
// as front faces so double-sided surfaces look the same from either side.
// The alpha channel passes through and each color channel saturates at 1.
//
// Parameters:
//   - lights: the light rig; disabled lights are ignored
//   - normal: the surface normal, need not be normalized; a zero normal is unlit
//   - base: the surface RGBA color
//
// Returns:
//   - [4]float32: the shaded color
func Shade(lights []Light, normal [3]float32, base [4]float32) [4]float32 {
	n := common.Normalize3(normal)
	if n == ([3]float32{}) {
		return base
	}
	var irr [3]float32
	for _, l := range lights {
		if l == nil || !l.Enabled() {
			continue
		}
		k := l.Intensity()
		if l.Type() == LightTypeDirectional {
			d := common.Dot3(n, common.Scale3(l.Direction(), -1))
			if d < 0 {
				d = -d
			}
			k *= d
		}
		c := l.Color()
		for i := range 3 {
			irr[i] += c[i] * k
		}
	}
	out := base
	for i := range 3 {
		out[i] = min(base[i]*irr[i], 1)
	}
	return out
}
