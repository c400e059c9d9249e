package material

// material is the implementation of the Material interface.
type material struct {
	name        string
	baseColor   [4]float32
	metallic    float32
	roughness   float32
	doubleSided bool
	pipelineKey string
}

// Material defines the interface for a render material, describing the surface
// properties a renderer backend needs to shade one room element.
//
// Materials are immutable once built and safe to share between scene nodes and
// goroutines. Backends that cannot express metallic/roughness (the software
// rasterizer, for example) use only the base color and fall back to Lambert shading.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo/diffuse RGBA color of the material.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Metallic retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// DoubleSided reports whether back faces are drawn.
	//
	// Returns:
	//   - bool: true if the material is visible from both sides
	DoubleSided() bool

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor:   [4]float32{1, 1, 1, 1},
		metallic:    0.0,
		roughness:   1.0,
		pipelineKey: PipelineSurface,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) DoubleSided() bool {
	return m.doubleSided
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}
