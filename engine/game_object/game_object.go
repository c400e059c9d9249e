package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
)

// Kind distinguishes the two node types a room scene holds per surface.
type Kind int

const (
	// KindSurface is the filled, lit face of a room surface.
	KindSurface Kind = iota

	// KindOutline is the unlit border drawn over a surface.
	KindOutline
)

func (k Kind) String() string {
	if k == KindOutline {
		return "outline"
	}
	return "surface"
}

type gameObject struct {
	id      uint64
	enabled atomic.Bool
	kind    Kind
	surface room.Surface
	mdl     model.Model
	mat     material.Material
}

// GameObject defines the interface for one renderable node of the room scene.
// A node pairs the surface it was generated from with the mesh and material
// that draw it. Everything except the enabled flag is fixed at construction.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Kind reports whether the node is a surface or an outline.
	//
	// Returns:
	//   - Kind: the node kind
	Kind() Kind

	// Role returns the role of the surface this node was generated from.
	//
	// Returns:
	//   - room.Role: the surface role
	Role() room.Role

	// Surface returns the surface description this node was generated from.
	//
	// Returns:
	//   - room.Surface: the source surface
	Surface() room.Surface

	// Model returns the Model associated with this object, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Material returns the material the node is drawn with, or nil if not set.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// Position returns the world-space center of the rendered element.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the Euler rotation of the rendered element in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject with the provided options.
// Objects start enabled.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Kind() Kind {
	return g.kind
}

func (g *gameObject) Role() room.Role {
	return g.surface.Role
}

func (g *gameObject) Surface() room.Surface {
	return g.surface
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Material() material.Material {
	return g.mat
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.surface.Position[0], g.surface.Position[1], g.surface.Position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.surface.Rotation[0], g.surface.Rotation[1], g.surface.Rotation[2]
}
