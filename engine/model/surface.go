package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-roomviz/common"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
)

// ErrInvalidSurface is returned when a surface cannot be tessellated.
var ErrInvalidSurface = errors.New("invalid surface")

// quadIndices is the CCW index list of a quad whose corners run (-,-), (+,-), (+,+), (-,+).
var quadIndices = [6]uint32{0, 1, 2, 0, 2, 3}

// boxFaces lists the local frame of each box face as (u, v, n) with u × v = n.
var boxFaces = [6][3][3]float32{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
	{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}},
}

// FromSurface tessellates a room surface into a world-space triangle mesh.
// A zero-thickness surface becomes one double-sided quad; a slab becomes a box
// of Size × Thickness whose +Z face is the interior face.
//
// Parameters:
//   - s: the surface to tessellate
//   - color: the RGBA vertex color
//
// Returns:
//   - Model: a TopologyTriangles model
//   - error: an error wrapping ErrInvalidSurface for non-positive sizes or thickness
func FromSurface(s room.Surface, color [4]float32) (Model, error) {
	if err := checkSurface(s); err != nil {
		return nil, err
	}

	var world [16]float32
	common.BuildModelMatrix(world[:], s.Position[0], s.Position[1], s.Position[2], s.Rotation[0], s.Rotation[1], s.Rotation[2], 1, 1, 1)
	half := [3]float32{s.Size[0] / 2, s.Size[1] / 2, s.Thickness / 2}

	faces := boxFaces[:]
	if s.Thickness == 0 {
		faces = faces[:1]
	}

	vertices := make([]GPUVertex, 0, 4*len(faces))
	indices := make([]uint32, 0, 6*len(faces))
	for _, f := range faces {
		u, v, n := f[0], f[1], f[2]
		hu, hv, hn := extent(u, half), extent(v, half), extent(n, half)
		center := common.Scale3(n, hn)
		normal := common.TransformDirection(world[:], n)

		base := uint32(len(vertices))
		for _, sg := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			local := common.Add3(center, common.Add3(common.Scale3(u, sg[0]*hu), common.Scale3(v, sg[1]*hv)))
			vertices = append(vertices, GPUVertex{
				Position: common.TransformPoint(world[:], local),
				Normal:   normal,
				Color:    color,
			})
		}
		for _, i := range quadIndices {
			indices = append(indices, base+i)
		}
	}

	return NewModel(
		WithName(s.Role.String()+"_surface"),
		WithTopology(TopologyTriangles),
		WithVertices(vertices),
		WithIndices(indices),
	)
}

// OutlineFromSurface builds the closed border of a surface's interior face as a line list.
// Outline vertices carry a zero normal so renderers draw them unlit.
//
// Parameters:
//   - s: the surface whose outline to build
//   - color: the RGBA line color
//
// Returns:
//   - Model: a TopologyLines model with four segments
//   - error: an error wrapping ErrInvalidSurface for non-positive sizes
func OutlineFromSurface(s room.Surface, color [4]float32) (Model, error) {
	if err := checkSurface(s); err != nil {
		return nil, err
	}
	vertices := make([]GPUVertex, 0, len(s.Outline))
	for _, p := range s.Outline {
		vertices = append(vertices, GPUVertex{Position: p, Color: color})
	}
	return NewModel(
		WithName(s.Role.String()+"_outline"),
		WithTopology(TopologyLines),
		WithVertices(vertices),
		WithIndices([]uint32{0, 1, 1, 2, 2, 3, 3, 0}),
	)
}

func checkSurface(s room.Surface) error {
	for _, v := range []float32{s.Size[0], s.Size[1]} {
		if !(v > 0) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: %s size %v", ErrInvalidSurface, s.Role, s.Size)
		}
	}
	if !(s.Thickness >= 0) || math.IsInf(float64(s.Thickness), 0) {
		return fmt.Errorf("%w: %s thickness %v", ErrInvalidSurface, s.Role, s.Thickness)
	}
	return nil
}

// extent returns the half extent of the box along an axis-aligned unit vector.
func extent(a, half [3]float32) float32 {
	var e float32
	for k := range 3 {
		if a[k] != 0 {
			e += half[k]
		}
	}
	return e
}
