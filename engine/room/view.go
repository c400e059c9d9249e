package room

import "strings"

// View identifies a named camera-placement preset.
// Values outside the declared constants are legal and place the camera like ViewCorner.
type View int

const (
	// ViewCorner looks into the room from high up near the far corner.
	ViewCorner View = iota
	// ViewSide looks across the room from outside its right wall.
	ViewSide
	// ViewTop looks down from well above the ceiling.
	ViewTop
	// ViewFront looks down the room's length from beyond its front wall.
	ViewFront

	// presetCount is the number of scripted presets with a placement formula.
	presetCount

	// ViewFree hands the camera to the user: orbit and zoom inside the room at eye height.
	// It has no scripted placement of its own.
	ViewFree View = 100
)

var viewNames = [presetCount]string{
	ViewCorner: "corner",
	ViewSide:   "side",
	ViewTop:    "top",
	ViewFront:  "front",
}

var viewLabels = [presetCount]string{
	ViewCorner: "Corner View",
	ViewSide:   "Side View",
	ViewTop:    "Top View",
	ViewFront:  "Front View",
}

// String returns the lowercase identifier of the view ("corner", "free", ...), or "unknown".
func (v View) String() string {
	if v == ViewFree {
		return "free"
	}
	if v >= 0 && v < presetCount {
		return viewNames[v]
	}
	return "unknown"
}

// Label returns the human-readable name shown on the view selector, e.g. "Corner View".
// Unknown views are labelled like the corner view they fall back to.
func (v View) Label() string {
	if v == ViewFree {
		return "Free View"
	}
	if v >= 0 && v < presetCount {
		return viewLabels[v]
	}
	return viewLabels[ViewCorner]
}

// Scripted reports whether the view is driven by a placement formula and the camera animator.
func (v View) Scripted() bool {
	return v != ViewFree
}

// ParseView maps an identifier such as "top" or "Top View" to its View.
// Unrecognized names return ViewCorner and false.
//
// Parameters:
//   - name: the view identifier or label, case-insensitive
//
// Returns:
//   - View: the matching view, or ViewCorner
//   - bool: true if name was recognized
func ParseView(name string) (View, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, " view")
	if n == "free" || n == "orbit" {
		return ViewFree, true
	}
	for v := ViewCorner; v < presetCount; v++ {
		if viewNames[v] == n {
			return v, true
		}
	}
	return ViewCorner, false
}

// Views returns the scripted presets in the order the view selector lists them.
func Views() []View {
	out := make([]View, 0, presetCount)
	for v := ViewCorner; v < presetCount; v++ {
		out = append(out, v)
	}
	return out
}
