package material

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
)

// Pipeline keys understood by the renderer backends.
const (
	PipelineSurface = "surface"
	PipelineOutline = "outline"
)

// Palette colors as hex strings.
const (
	WallHex       = "#ffffff"
	FloorHex      = "#e0e0e0"
	CeilingHex    = "#f8f8f8"
	EdgeHex       = "#403E43"
	BackgroundHex = "#f5f5f7"
)

var (
	wall = NewMaterial(
		WithName("wall"),
		WithBaseColor(MustHex(WallHex)),
		WithRoughness(0.8),
		WithMetallic(0),
		WithDoubleSided(true),
	)
	floor = NewMaterial(
		WithName("floor"),
		WithBaseColor(MustHex(FloorHex)),
		WithRoughness(0.7),
		WithMetallic(0.1),
		WithDoubleSided(true),
	)
	ceiling = NewMaterial(
		WithName("ceiling"),
		WithBaseColor(MustHex(CeilingHex)),
		WithRoughness(0.9),
		WithMetallic(0),
		WithDoubleSided(true),
	)
	edge = NewMaterial(
		WithName("edge"),
		WithBaseColor(MustHex(EdgeHex)),
		WithPipelineKey(PipelineOutline),
	)
)

// ForRole returns the shared surface material for a room role.
// Unknown roles get the wall material.
//
// Parameters:
//   - r: the surface role
//
// Returns:
//   - Material: the material to draw the surface with
func ForRole(r room.Role) Material {
	switch r {
	case room.RoleFloor:
		return floor
	case room.RoleCeiling:
		return ceiling
	default:
		return wall
	}
}

// Edge returns the material used for surface outlines.
func Edge() Material {
	return edge
}

// Background returns the clear color of the viewport.
func Background() [4]float32 {
	return MustHex(BackgroundHex)
}

// Hex parses a "#rrggbb" or "#rrggbbaa" color into normalized RGBA.
//
// Parameters:
//   - s: the hex string, with or without the leading '#'
//
// Returns:
//   - [4]float32: the color with components in [0, 1]
//   - error: an error if s is not a valid hex color
func Hex(s string) ([4]float32, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return [4]float32{}, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return [4]float32{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return [4]float32{
		float32((v>>24)&0xff) / 255,
		float32((v>>16)&0xff) / 255,
		float32((v>>8)&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// MustHex is like Hex but panics on malformed input. Use it for compile-time constants only.
func MustHex(s string) [4]float32 {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
