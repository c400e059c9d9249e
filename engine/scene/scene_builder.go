package scene

import (
	"github.com/Carmen-Shannon/oxy-roomviz/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithComputeWorkers sets the number of worker goroutines used to tessellate
// surfaces during Apply. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}

// WithLights replaces the default light rig.
//
// Parameters:
//   - lights: the lights illuminating the room
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lights = append([]light.Light{}, lights...)
	}
}
