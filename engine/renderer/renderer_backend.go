package renderer

import (
	"image"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/pipeline"
)

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend. It needs a window.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeSoftware selects the CPU rasterizer. It renders offscreen and needs no window.
	BackendTypeSoftware
)

func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeWGPU:
		return "wgpu"
	case BackendTypeSoftware:
		return "software"
	default:
		return "unknown"
	}
}

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4; the software backend ignores it.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// Batch is every vertex and index drawn with one pipeline, concatenated so a frame
// issues one draw call per pipeline.
type Batch struct {
	Pipeline pipeline.Pipeline
	Vertices []model.GPUVertex
	Indices  []uint32
}

// RendererBackend is the contract between the Renderer and a concrete backend.
// All methods are called from the frame loop.
type RendererBackend interface {
	// Configure (re)creates size dependent resources such as the swapchain and depth buffer.
	//
	// Parameters:
	//   - width: target width in pixels
	//   - height: target height in pixels
	Configure(width, height int)

	// SetPresentMode sets how frames are delivered to the display. Call before Configure.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the color target is cleared to each frame.
	//
	// Parameters:
	//   - rgba: linear RGBA in [0, 1]
	SetClearColor(rgba [4]float32)

	// RegisterPipeline prepares the backend's native state for a pipeline.
	//
	// Parameters:
	//   - p: the pipeline to compile
	//
	// Returns:
	//   - error: an error if the pipeline could not be created
	RegisterPipeline(p pipeline.Pipeline) error

	// Upload replaces all geometry with the given batches.
	//
	// Parameters:
	//   - batches: one batch per pipeline, in draw order
	//
	// Returns:
	//   - error: an error if buffers could not be created
	Upload(batches []Batch) error

	// BeginFrame acquires the frame's color target and clears it.
	//
	// Returns:
	//   - error: an error if the target could not be acquired
	BeginFrame() error

	// Draw encodes every uploaded batch using the frame view.
	//
	// Parameters:
	//   - view: the camera and lights for this frame
	//
	// Returns:
	//   - error: an error if drawing failed
	Draw(view FrameView) error

	// EndFrame finishes and submits the frame's work.
	EndFrame()

	// Present displays the finished frame.
	Present()

	// Image returns a copy of the last finished frame, or nil if the backend cannot read it back.
	//
	// Returns:
	//   - image.Image: the frame or nil
	Image() image.Image

	// Release frees every backend resource.
	Release()
}
