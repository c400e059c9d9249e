package room

// Role identifies which face of the room a surface forms.
type Role int

const (
	RoleFloor Role = iota
	RoleCeiling
	RoleBackWall
	RoleFrontWall
	RoleLeftWall
	RoleRightWall

	roleCount
)

var roleNames = [roleCount]string{
	RoleFloor:     "floor",
	RoleCeiling:   "ceiling",
	RoleBackWall:  "back_wall",
	RoleFrontWall: "front_wall",
	RoleLeftWall:  "left_wall",
	RoleRightWall: "right_wall",
}

func (r Role) String() string {
	if r >= 0 && r < roleCount {
		return roleNames[r]
	}
	return "unknown"
}

// IsWall reports whether the role is one of the four vertical walls.
func (r Role) IsWall() bool {
	return r >= RoleBackWall && r < roleCount
}

// Roles returns every role in build order.
func Roles() []Role {
	out := make([]Role, 0, roleCount)
	for r := RoleFloor; r < roleCount; r++ {
		out = append(out, r)
	}
	return out
}

// Surface is a backend-independent description of one planar face of the room.
//
// The rendered element is a Size[0] × Size[1] rectangle in its local XY plane (a slab Thickness deep along
// local Z when Thickness > 0), rotated by Rotation and centered on Position. Interior and Outline always
// describe the face that bounds the room, so they do not move when Thickness changes.
type Surface struct {
	// Role identifies the face.
	Role Role

	// Size is the face extent along its local X and Y axes, in meters.
	Size [2]float32

	// Position is the center of the rendered element in world space.
	Position [3]float32

	// Rotation holds Euler angles in radians, composed Y * X * Z like common.BuildModelMatrix.
	Rotation [3]float32

	// Normal is the unit normal of the interior face, pointing into the room.
	Normal [3]float32

	// Thickness is the slab depth added outward, or 0 for a zero-thickness plane.
	Thickness float32

	// Interior is the center of the face that bounds the room interior.
	Interior [3]float32

	// Outline is the border polygon of the interior face. Corners follow the local
	// (-x,-y), (+x,-y), (+x,+y), (-x,+y) order.
	Outline [4][3]float32
}

// Edges returns the four outline segments as start/end point pairs.
//
// Returns:
//   - [4][2][3]float32: the outline edges in polygon order
func (s Surface) Edges() [4][2][3]float32 {
	var out [4][2][3]float32
	for i := range 4 {
		out[i] = [2][3]float32{s.Outline[i], s.Outline[(i+1)%4]}
	}
	return out
}

// Area returns the area of the face in square meters.
func (s Surface) Area() float32 {
	return s.Size[0] * s.Size[1]
}
