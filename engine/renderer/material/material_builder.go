package material

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the albedo/diffuse RGBA color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithMetallic is an option builder that sets the metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic option to a material
func WithMetallic(metallic float32) MaterialBuilderOption {
	return func(m *material) {
		m.metallic = metallic
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = roughness
	}
}

// WithDoubleSided marks the material as visible from both sides.
func WithDoubleSided(doubleSided bool) MaterialBuilderOption {
	return func(m *material) {
		m.doubleSided = doubleSided
	}
}

// WithPipelineKey is an option builder that selects the render pipeline for the material.
//
// Parameters:
//   - key: PipelineSurface or PipelineOutline
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}
