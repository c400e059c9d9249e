package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/room"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/scene"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window the engine presents to. When no renderer is given, a WebGPU
// renderer is created for it.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene sets the scene the room geometry is applied to.
//
// Parameters:
//   - s: the Scene to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.handles.Scene = s
	}
}

// WithCamera sets the camera the view presets and free view move.
//
// Parameters:
//   - c: the Camera to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.handles.Camera = c
	}
}

// WithRenderer sets the renderer each frame is drawn with, e.g. a software renderer for headless use.
//
// Parameters:
//   - r: the Renderer to draw with
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.handles.Renderer = r
	}
}

// WithHandles sets all three handles exactly as given. Nil handles stay nil and the
// operations needing them become no-ops.
//
// Parameters:
//   - h: the handles to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithHandles(h SceneHandles) EngineBuilderOption {
	return func(e *engine) {
		e.handles = h
		e.handlesSet = true
	}
}

// WithDimensions sets the default room shown at startup and restored by Reset.
// Invalid dimensions are ignored.
//
// Parameters:
//   - d: the default dimensions
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDimensions(d room.Dimensions) EngineBuilderOption {
	return func(e *engine) {
		if d.Validate() == nil {
			e.defaultDimensions = d
		}
	}
}

// WithView sets the default view shown at startup and restored by Reset.
//
// Parameters:
//   - v: the default view
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithView(v room.View) EngineBuilderOption {
	return func(e *engine) {
		e.defaultView = v
	}
}

// WithAnimationDuration sets how long scripted camera moves take. Values <= 0 are ignored.
//
// Parameters:
//   - d: the move duration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAnimationDuration(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		if d > 0 {
			e.animationDuration = d
		}
	}
}

// WithWallThickness builds walls, floor and ceiling as slabs of the given depth.
// The default of 0 builds flat planes; negative values are ignored.
//
// Parameters:
//   - thickness: slab depth in meters
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWallThickness(thickness float32) EngineBuilderOption {
	return func(e *engine) {
		if thickness >= 0 {
			e.wallThickness = thickness
		}
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetRenderFrameLimit(fps)
	}
}

// WithClock replaces time.Now as the source of frame timestamps in Run.
//
// Parameters:
//   - now: the clock function
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(now func() time.Time) EngineBuilderOption {
	return func(e *engine) {
		if now != nil {
			e.clock = now
		}
	}
}
