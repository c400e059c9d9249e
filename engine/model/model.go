package model

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-roomviz/common"
)

// model is the implementation of the Model interface.
type model struct {
	name                  string
	topology              Topology
	vertices              []GPUVertex
	indices               []uint32
	center                [3]float32
	boundingRadius        float32
	vertexData, indexData []byte
}

// Model defines the interface for a renderable mesh.
// A Model holds world-space vertices and an index list together with their
// serialized GPU form. Models are immutable after construction, so the same
// Model can be read by a renderer while a newer one is being built.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Topology reports how the indices are assembled into primitives.
	//
	// Returns:
	//   - Topology: triangles or lines
	Topology() Topology

	// Vertices returns the world-space vertices of the mesh.
	// The returned slice must not be modified.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices returns the index list of the mesh.
	// The returned slice must not be modified.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexData returns the raw vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Center returns the centroid of the mesh vertices.
	Center() [3]float32

	// BoundingRadius returns the radius of the sphere around Center enclosing every vertex.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model from the provided options and serializes its mesh.
// It returns an error when an index points past the vertex list or the index count
// does not fit the topology.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions to configure the model
//
// Returns:
//   - Model: the constructed model
//   - error: an error if the mesh is inconsistent
func NewModel(options ...ModelBuilderOption) (Model, error) {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	if n := m.topology.IndicesPerPrimitive(); len(m.indices)%n != 0 {
		return nil, fmt.Errorf("model %q: %d indices do not form whole %s", m.name, len(m.indices), m.topology)
	}
	for _, idx := range m.indices {
		if int(idx) >= len(m.vertices) {
			return nil, fmt.Errorf("model %q: index %d out of range for %d vertices", m.name, idx, len(m.vertices))
		}
	}

	if len(m.vertices) > 0 {
		var sum [3]float32
		for _, v := range m.vertices {
			sum = common.Add3(sum, v.Position)
		}
		m.center = common.Scale3(sum, 1/float32(len(m.vertices)))
		for _, v := range m.vertices {
			m.boundingRadius = max(m.boundingRadius, common.Length3(common.Sub3(v.Position, m.center)))
		}
	}
	m.vertexData = MarshalVertices(m.vertices)
	m.indexData = MarshalIndices(m.indices)
	return m, nil
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Topology() Topology {
	return m.topology
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) Center() [3]float32 {
	return m.center
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
