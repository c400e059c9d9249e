package room

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidThickness is returned when a requested slab thickness is negative or not finite.
var ErrInvalidThickness = errors.New("invalid surface thickness")

// DefaultSlabThickness is the wall depth used by renderers that want solid walls instead of planes.
const DefaultSlabThickness float32 = 0.1

// SurfaceCount is the number of primary surfaces Build always returns.
const SurfaceCount = int(roleCount)

// buildConfig holds the options applied to a single Build call.
type buildConfig struct {
	thickness float32
}

// faceFrame is the exact orientation of one face: local X and Y directions, interior normal, and Euler rotation.
type faceFrame struct {
	u, v, n  [3]float32
	rotation [3]float32
}

const halfPi = float32(math.Pi / 2)

var faceFrames = [roleCount]faceFrame{
	RoleFloor:     {u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}, n: [3]float32{0, 1, 0}, rotation: [3]float32{-halfPi, 0, 0}},
	RoleCeiling:   {u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}, n: [3]float32{0, -1, 0}, rotation: [3]float32{halfPi, 0, 0}},
	RoleBackWall:  {u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}, n: [3]float32{0, 0, 1}, rotation: [3]float32{0, 0, 0}},
	RoleFrontWall: {u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}, n: [3]float32{0, 0, -1}, rotation: [3]float32{0, math.Pi, 0}},
	RoleLeftWall:  {u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}, n: [3]float32{1, 0, 0}, rotation: [3]float32{0, halfPi, 0}},
	RoleRightWall: {u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}, n: [3]float32{-1, 0, 0}, rotation: [3]float32{0, -halfPi, 0}},
}

// Build produces the six primary surfaces of a room, in Roles() order, each carrying its outline polygon.
// The result is a fresh slice on every call and depends only on its inputs.
//
// The interior faces always span exactly d: thickness, when requested, is added outward.
//
// Parameters:
//   - d: the room dimensions
//   - options: functional options such as WithWallThickness
//
// Returns:
//   - []Surface: floor, ceiling, back, front, left and right surfaces
//   - error: an error wrapping ErrInvalidDimensions or ErrInvalidThickness
func Build(d Dimensions, options ...RoomBuilderOption) ([]Surface, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("build room: %w", err)
	}
	cfg := buildConfig{}
	for _, opt := range options {
		opt(&cfg)
	}
	t := float64(cfg.thickness)
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return nil, fmt.Errorf("build room: %w: %v", ErrInvalidThickness, cfg.thickness)
	}

	w, l, h := d.Width, d.Length, d.Height
	centers := [roleCount][3]float32{
		RoleFloor:     {w / 2, 0, l / 2},
		RoleCeiling:   {w / 2, h, l / 2},
		RoleBackWall:  {w / 2, h / 2, 0},
		RoleFrontWall: {w / 2, h / 2, l},
		RoleLeftWall:  {0, h / 2, l / 2},
		RoleRightWall: {w, h / 2, l / 2},
	}
	sizes := [roleCount][2]float32{
		RoleFloor:     {w, l},
		RoleCeiling:   {w, l},
		RoleBackWall:  {w, h},
		RoleFrontWall: {w, h},
		RoleLeftWall:  {l, h},
		RoleRightWall: {l, h},
	}

	surfaces := make([]Surface, 0, roleCount)
	for r := RoleFloor; r < roleCount; r++ {
		surfaces = append(surfaces, newSurface(r, sizes[r], centers[r], cfg.thickness))
	}
	return surfaces, nil
}

// newSurface assembles a Surface from its interior center and the fixed frame of its role.
func newSurface(r Role, size [2]float32, interior [3]float32, thickness float32) Surface {
	f := faceFrames[r]
	hx, hy := size[0]/2, size[1]/2

	s := Surface{
		Role:      r,
		Size:      size,
		Rotation:  f.rotation,
		Normal:    f.n,
		Thickness: thickness,
		Interior:  interior,
	}
	signs := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i, sg := range signs {
		for k := range 3 {
			s.Outline[i][k] = interior[k] + f.u[k]*sg[0]*hx + f.v[k]*sg[1]*hy
		}
	}
	// The slab grows away from the interior, so its center moves against the normal.
	for k := range 3 {
		s.Position[k] = interior[k] - f.n[k]*thickness/2
	}
	return s
}
