package light

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient represents uniform light that reaches every fragment equally,
	// regardless of orientation. It keeps surfaces facing away from every
	// directional light from going black.
	LightTypeAmbient LightType = iota

	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun. Affects all fragments
	// uniformly with no distance attenuation.
	LightTypeDirectional
)

func (t LightType) String() string {
	switch t {
	case LightTypeAmbient:
		return "ambient"
	case LightTypeDirectional:
		return "directional"
	default:
		return "unknown"
	}
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType LightType
	direction [3]float32
	color     [3]float32
	intensity float32
	enabled   bool
}

// Light defines the interface for a light source in the scene.
//
// Lights are scene-level entities that contribute to the final pixel color of
// every lit surface. Ambient and directional lights share this interface;
// Direction returns the zero vector for ambient lights.
//
// The rig is marshaled into a uniform block once per frame by GPULightRig.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (ambient or directional)
	Type() LightType

	// Direction returns the normalized direction the light travels in.
	// Meaningless for ambient lights.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light is active for rendering.
	// Disabled lights are skipped by Shade and by GPU marshaling.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (ambient or directional)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		direction: [3]float32{0, -1, 0},
		color:     [3]float32{1, 1, 1},
		intensity: 1.0,
		enabled:   true,
	}
	if lightType == LightTypeAmbient {
		l.direction = [3]float32{}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
