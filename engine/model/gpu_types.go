package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct for room pipelines.
// Matches GPUVertex layout exactly (40 bytes, tightly packed vertex buffer).
const GPUVertexSource = `struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) color: vec4<f32>,
};
`

// GPUVertexStride is the byte stride between consecutive vertices in a vertex buffer.
const GPUVertexStride = 40

// GPUVertex is the GPU-aligned representation of a single world-space room vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 40 bytes (no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in world space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting, zero for unlit lines (12 bytes)
	Color    [4]float32 // offset 24: per-vertex RGBA color (16 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 40-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexStride)
	g.put(buf)
	return buf
}

func (g *GPUVertex) put(buf []byte) {
	fields := [10]float32{
		g.Position[0], g.Position[1], g.Position[2],
		g.Normal[0], g.Normal[1], g.Normal[2],
		g.Color[0], g.Color[1], g.Color[2], g.Color[3],
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}

// MarshalVertices serializes a vertex slice into one contiguous buffer.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: len(vertices) * GPUVertexStride bytes
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, len(vertices)*GPUVertexStride)
	for i := range vertices {
		vertices[i].put(buf[i*GPUVertexStride:])
	}
	return buf
}

// MarshalIndices serializes a uint32 index slice into little-endian bytes.
//
// Parameters:
//   - indices: the indices to serialize
//
// Returns:
//   - []byte: len(indices) * 4 bytes
func MarshalIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
