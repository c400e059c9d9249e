package model

// ModelBuilderOption is a function that configures a model instance during construction.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the model.
//
// Parameters:
//   - name: the identifier for the model
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithTopology is an option builder that sets the primitive topology of the model.
//
// Parameters:
//   - topology: TopologyTriangles or TopologyLines
//
// Returns:
//   - ModelBuilderOption: a function that applies the topology option to a model
func WithTopology(topology Topology) ModelBuilderOption {
	return func(m *model) {
		m.topology = topology
	}
}

// WithVertices is an option builder that sets the world-space vertices of the model.
// The model takes ownership of the slice.
//
// Parameters:
//   - vertices: the mesh vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the index list of the model.
// The model takes ownership of the slice.
//
// Parameters:
//   - indices: the mesh indices
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}
