package renderer

import (
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/pipeline"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPipeline registers an extra Pipeline after the default ones. Materials select it
// through their pipeline key.
//
// Parameters:
//   - p: the Pipeline to register
//
// Returns:
//   - RendererBuilderOption: a function that applies the pipeline option to a renderer
func WithPipeline(p pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPipelines = append(r.pendingPipelines, p)
	}
}

// WithSize sets the offscreen render size used when no window is attached.
// Non-positive values are ignored.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}

// WithClearColor sets the background color. The default is material.Background().
//
// Parameters:
//   - rgba: linear RGBA in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(rgba [4]float32) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = rgba
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the WebGPU backend.
// When not specified, the default is MSAA4x. Use MSAAOff to disable MSAA entirely.
//
// Parameters:
//   - count: the MSAASampleCount to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingMSAA = &count
	}
}

// WithSupersampling renders software frames scale times larger in each direction and
// filters them down to the output size. Values below 2 disable it. The WebGPU backend
// ignores it; use WithMSAA there.
//
// Parameters:
//   - scale: the supersampling factor
//
// Returns:
//   - RendererBuilderOption: a function that applies the supersampling option to a renderer
func WithSupersampling(scale int) RendererBuilderOption {
	return func(r *renderer) {
		r.supersample = scale
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe). For rendering without any GPU stack use BackendTypeSoftware.
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
