package model

// Topology identifies how a model's index list is assembled into primitives.
type Topology int

const (
	// TopologyTriangles assembles every three indices into a filled, lit triangle.
	TopologyTriangles Topology = iota

	// TopologyLines assembles every two indices into an unlit line segment.
	TopologyLines
)

func (t Topology) String() string {
	switch t {
	case TopologyTriangles:
		return "triangles"
	case TopologyLines:
		return "lines"
	default:
		return "unknown"
	}
}

// IndicesPerPrimitive returns how many indices make up one primitive.
func (t Topology) IndicesPerPrimitive() int {
	if t == TopologyLines {
		return 2
	}
	return 3
}
