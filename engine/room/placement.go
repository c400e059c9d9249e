package room

import (
	"fmt"
	"math"
)

// Pose is a camera position together with the point it looks at, both in world space.
type Pose struct {
	Position [3]float32
	LookAt   [3]float32
}

// placement computes a camera position from room dimensions.
type placement func(d Dimensions) [3]float32

// placements is indexed by View. Its length must equal presetCount; the check below fails to compile otherwise.
var placements = [...]placement{
	ViewCorner: func(d Dimensions) [3]float32 {
		return [3]float32{0.8 * d.Width, 0.7 * d.Height, 0.8 * d.Length}
	},
	ViewSide: func(d Dimensions) [3]float32 {
		return [3]float32{1.5 * d.Width, 0.6 * d.Height, 0.3 * d.Length}
	},
	ViewTop: func(d Dimensions) [3]float32 {
		return [3]float32{0.3 * d.Width, 2.2 * d.Height, 0.3 * d.Length}
	},
	ViewFront: func(d Dimensions) [3]float32 {
		return [3]float32{0.3 * d.Width, 0.6 * d.Height, 1.5 * d.Length}
	},
}

var _ = [1]struct{}{}[len(placements)-int(presetCount)]

// LookAtTarget returns the point every scripted view looks at: slightly off-center and below mid-height.
//
// Parameters:
//   - d: the room dimensions
//
// Returns:
//   - [3]float32: the look-at point
func LookAtTarget(d Dimensions) [3]float32 {
	return [3]float32{0.45 * d.Width, 0.4 * d.Height, 0.45 * d.Length}
}

// Place computes the camera pose for a view of a room. It is pure: equal inputs give bit-identical outputs.
// Views without a placement formula (ViewFree and unrecognized values) use the corner formula.
//
// Parameters:
//   - d: the room dimensions
//   - v: the requested view
//
// Returns:
//   - Pose: the camera position and look-at target
//   - error: an error wrapping ErrInvalidDimensions if d is not valid, or so large that the pose overflows float32
func Place(d Dimensions, v View) (Pose, error) {
	if err := d.Validate(); err != nil {
		return Pose{}, fmt.Errorf("place %s view: %w", v, err)
	}
	f := placements[ViewCorner]
	if v >= 0 && int(v) < len(placements) {
		f = placements[v]
	}
	pose := Pose{Position: f(d), LookAt: LookAtTarget(d)}
	if !finite3(pose.Position) || !finite3(pose.LookAt) {
		return Pose{}, fmt.Errorf("place %s view: %w: %g × %g × %g m overflows the camera position",
			v, ErrInvalidDimensions, d.Width, d.Length, d.Height)
	}
	return pose, nil
}

func finite3(p [3]float32) bool {
	for _, c := range p {
		if math.IsInf(float64(c), 0) || math.IsNaN(float64(c)) {
			return false
		}
	}
	return true
}
