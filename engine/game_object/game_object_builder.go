package game_object

import (
	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithKind sets whether the GameObject is a surface or an outline node.
func WithKind(kind Kind) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.kind = kind
	}
}

// WithSurface sets the room surface the GameObject was generated from.
//
// Parameters:
//   - s: the source surface
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Surface
func WithSurface(s room.Surface) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.surface = s
	}
}

// WithModel sets the Model for this GameObject.
//
// Parameters:
//   - m: the Model to associate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Model
func WithModel(m model.Model) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mdl = m
	}
}

// WithMaterial sets the Material for this GameObject.
//
// Parameters:
//   - m: the Material to draw with
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Material
func WithMaterial(m material.Material) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mat = m
	}
}
