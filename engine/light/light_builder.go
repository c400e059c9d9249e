package light

import "github.com/Carmen-Shannon/oxy-roomviz/common"

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithDirection is an option builder that sets the direction of the light.
// The direction is normalized before storing.
//
// Parameters:
//   - x: the x direction component
//   - y: the y direction component
//   - z: the z direction component
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = normalize3(x, y, z)
	}
}

// WithSourcePosition points a directional light from a world position toward the origin,
// the way a sun placed at pos would shine.
//
// Parameters:
//   - x, y, z: the position the light shines from
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithSourcePosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = normalize3(-x, -y, -z)
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithEnabled is an option builder that sets whether the light starts enabled.
//
// Parameters:
//   - enabled: true to enable the light
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

// normalize3 normalizes a 3-component vector. Returns a zero vector if the input
// has zero length.
func normalize3(x, y, z float32) [3]float32 {
	return common.Normalize3([3]float32{x, y, z})
}
