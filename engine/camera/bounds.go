package camera

import "github.com/Carmen-Shannon/oxy-roomviz/common"

// EyeHeight is the standing eye height used while viewing a room from inside.
const EyeHeight float32 = 1.6

// InteriorPadding keeps the free camera this far from every wall.
const InteriorPadding float32 = 0.3

// Bounds is the horizontal region and fixed height the free camera is confined to.
type Bounds struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
	EyeHeight  float32
}

// InteriorBounds returns the free-view region for a room whose floor spans
// [0, width] × [0, length]. Rooms narrower than twice the padding collapse the
// region onto the center line.
//
// Parameters:
//   - width: room width along X
//   - length: room length along Z
//
// Returns:
//   - Bounds: the padded interior at EyeHeight
func InteriorBounds(width, length float32) Bounds {
	b := Bounds{
		MinX: InteriorPadding, MaxX: width - InteriorPadding,
		MinZ: InteriorPadding, MaxZ: length - InteriorPadding,
		EyeHeight: EyeHeight,
	}
	if b.MinX > b.MaxX {
		b.MinX, b.MaxX = width/2, width/2
	}
	if b.MinZ > b.MaxZ {
		b.MinZ, b.MaxZ = length/2, length/2
	}
	return b
}

// Contains reports whether p lies inside the region at eye height.
func (b Bounds) Contains(p [3]float32) bool {
	return p[0] >= b.MinX && p[0] <= b.MaxX && p[2] >= b.MinZ && p[2] <= b.MaxZ && p[1] == b.EyeHeight
}

// constrain pins y to the eye height and clamps x and z into the region.
func (b Bounds) constrain(p [3]float32) [3]float32 {
	return [3]float32{
		common.Clamp32(p[0], b.MinX, b.MaxX),
		b.EyeHeight,
		common.Clamp32(p[2], b.MinZ, b.MaxZ),
	}
}

// inset shrinks the region by margin on every side. An axis too short to shrink
// collapses onto its center line.
func (b Bounds) inset(margin float32) Bounds {
	out := b
	out.MinX, out.MaxX = b.MinX+margin, b.MaxX-margin
	if out.MinX > out.MaxX {
		out.MinX = (b.MinX + b.MaxX) / 2
		out.MaxX = out.MinX
	}
	out.MinZ, out.MaxZ = b.MinZ+margin, b.MaxZ-margin
	if out.MinZ > out.MaxZ {
		out.MinZ = (b.MinZ + b.MaxZ) / 2
		out.MaxZ = out.MinZ
	}
	return out
}

// reach returns the largest s in [0, 1] for which from + s*d stays inside the region
// horizontally. from is expected to be inside.
func (b Bounds) reach(from, d [3]float32) float32 {
	s := float32(1)
	limit := func(p, dp, lo, hi float32) {
		switch {
		case dp > 0:
			s = min(s, (hi-p)/dp)
		case dp < 0:
			s = min(s, (lo-p)/dp)
		}
	}
	limit(from[0], d[0], b.MinX, b.MaxX)
	limit(from[2], d[2], b.MinZ, b.MaxZ)
	return max(s, 0)
}
