package renderer

import (
	"fmt"
	"image"
	"sync"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/game_object"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/light"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/window"
)

// Default offscreen size used by the software backend when no window is attached.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// FrameView is everything a frame needs besides geometry.
type FrameView struct {
	Camera camera.Camera
	Lights []light.Light
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline
	// pipelineOrder is the draw order of cached pipelines, by registration
	pipelineOrder []string

	backendType RendererBackendType
	backend     RendererBackend

	width, height int
	clearColor    [4]float32

	synced        bool
	syncedVersion uint64
	uploads       int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	supersample          int
	pendingPipelines     []pipeline.Pipeline
}

// Renderer defines the interface for the rendering system.
//
// The Renderer owns a cache of pipelines keyed by material pipeline key and a backend
// that does the actual drawing. Scene content reaches the backend through Sync, which
// batches every enabled node by pipeline and re-uploads only when the scene version
// changes. A frame is BeginFrame, Draw, EndFrame, Present, or Render for all four.
type Renderer interface {
	// BackendType returns the backend the renderer was created with.
	//
	// Returns:
	//   - RendererBackendType: the backend type
	BackendType() RendererBackendType

	// Pipeline retrieves the cached Pipeline associated with the given key.
	// If the Pipeline does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// Pipelines returns a copy of the pipeline cache.
	//
	// Returns:
	//   - map[string]pipeline.Pipeline: a map of pipeline keys to their corresponding Pipeline objects
	Pipelines() map[string]pipeline.Pipeline

	// RegisterPipelines compiles pipelines on the backend and caches them by PipelineKey.
	// Pipelines whose keys are already registered are skipped to avoid duplicate GPU resource creation.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	//
	// Returns:
	//   - error: an error if pipeline creation fails
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// Resize configures the underlying backend to handle a new surface size.
	// Non-positive sizes are ignored (a minimized window reports 0×0).
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Size returns the current render target size.
	//
	// Returns:
	//   - width, height: size in pixels
	Size() (width, height int)

	// SetPresentMode sets the surface present mode. A call to Resize is required
	// after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the background color.
	//
	// Parameters:
	//   - rgba: linear RGBA in [0, 1]
	SetClearColor(rgba [4]float32)

	// Sync uploads the given nodes if version differs from the last synced version.
	//
	// Parameters:
	//   - version: the scene content version the nodes belong to
	//   - objects: the scene nodes; disabled nodes and nodes without a model are skipped
	//
	// Returns:
	//   - error: an error if a node names an unknown pipeline or the upload fails
	Sync(version uint64, objects []game_object.GameObject) error

	// BeginFrame acquires the frame target and clears it.
	//
	// Returns:
	//   - error: an error if the target could not be acquired
	BeginFrame() error

	// Draw encodes the synced geometry from the given view.
	//
	// Parameters:
	//   - view: camera and lights for the frame
	//
	// Returns:
	//   - error: an error if the view has no camera or drawing fails
	Draw(view FrameView) error

	// EndFrame ends the current frame and submits its work.
	EndFrame()

	// Present displays the finished frame.
	Present()

	// Render runs BeginFrame, Draw, EndFrame and Present.
	//
	// Parameters:
	//   - view: camera and lights for the frame
	//
	// Returns:
	//   - error: the first failure
	Render(view FrameView) error

	// Image returns a copy of the last finished frame. Only the software backend can read
	// frames back; the WebGPU backend returns nil.
	//
	// Returns:
	//   - image.Image: the frame or nil
	Image() image.Image

	// Release frees pipelines and backend resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer with the given backend. The WebGPU backend draws
// into the window's surface and panics if the window or GPU is unavailable. The
// software backend renders offscreen at the window size, or at WithSize when win is nil.
// The surface and outline pipelines named by the material package are registered by default.
//
// Parameters:
//   - backendType: the type of rendering backend to use
//   - win: the window to draw into, may be nil for the software backend
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
		width:         DefaultWidth,
		height:        DefaultHeight,
		clearColor:    material.Background(),
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}
	if win != nil {
		r.width, r.height = win.Width(), win.Height()
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeSoftware:
		r.backend = newSoftwareRendererBackend(r.supersample)
	case BackendTypeWGPU:
		fallthrough
	default:
		if win == nil {
			panic("renderer: the wgpu backend needs a window")
		}
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.SetClearColor(r.clearColor)
	r.backend.Configure(r.width, r.height)

	if err := r.RegisterPipelines(append(DefaultPipelines(), r.pendingPipelines...)...); err != nil {
		panic(fmt.Sprintf("renderer: failed to register pipelines: %v", err))
	}
	r.pendingPipelines = nil
	return r
}

// DefaultPipelines returns the pipelines for the material.PipelineSurface and
// material.PipelineOutline keys: double-sided lit triangles, and depth-tested
// lines pulled slightly toward the camera so edges stay visible on their faces.
//
// Returns:
//   - []pipeline.Pipeline: the surface pipeline followed by the outline pipeline
func DefaultPipelines() []pipeline.Pipeline {
	return []pipeline.Pipeline{
		pipeline.NewPipeline(
			pipeline.WithPipelineKey(material.PipelineSurface),
			pipeline.WithTopology(model.TopologyTriangles),
			pipeline.WithCullMode(pipeline.CullModeNone),
		),
		pipeline.NewPipeline(
			pipeline.WithPipelineKey(material.PipelineOutline),
			pipeline.WithTopology(model.TopologyLines),
			pipeline.WithDepthWriteEnabled(false),
			pipeline.WithDepthBias(-1e-4),
			pipeline.WithLineWidth(1.5),
		),
	}
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) Pipelines() map[string]pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]pipeline.Pipeline, len(r.pipelineCache))
	for k, p := range r.pipelineCache {
		out[k] = p
	}
	return out
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pipelines {
		key := p.PipelineKey()
		if _, exists := r.pipelineCache[key]; exists {
			continue
		}
		if err := r.backend.RegisterPipeline(p); err != nil {
			return fmt.Errorf("pipeline %q: %w", key, err)
		}
		r.pipelineCache[key] = p
		r.pipelineOrder = append(r.pipelineOrder, key)
	}
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	r.backend.Configure(width, height)
}

func (r *renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetClearColor(rgba [4]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = rgba
	r.backend.SetClearColor(rgba)
}

func (r *renderer) Sync(version uint64, objects []game_object.GameObject) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.synced && version == r.syncedVersion {
		return nil
	}

	byKey := make(map[string]*Batch, len(r.pipelineOrder))
	for _, obj := range objects {
		if obj == nil || !obj.Enabled() || obj.Model() == nil {
			continue
		}
		mdl := obj.Model()
		key := material.PipelineSurface
		if mdl.Topology() == model.TopologyLines {
			key = material.PipelineOutline
		}
		if mat := obj.Material(); mat != nil && mat.PipelineKey() != "" {
			key = mat.PipelineKey()
		}
		p, exists := r.pipelineCache[key]
		if !exists {
			return fmt.Errorf("render pipeline %q not found in cache", key)
		}
		if p.Topology() != mdl.Topology() {
			return fmt.Errorf("node %d: %s model cannot be drawn by %s pipeline %q", obj.ID(), mdl.Topology(), p.Topology(), key)
		}

		b := byKey[key]
		if b == nil {
			b = &Batch{Pipeline: p}
			byKey[key] = b
		}
		base := uint32(len(b.Vertices))
		b.Vertices = append(b.Vertices, mdl.Vertices()...)
		for _, idx := range mdl.Indices() {
			b.Indices = append(b.Indices, base+idx)
		}
	}

	batches := make([]Batch, 0, len(byKey))
	for _, key := range r.pipelineOrder {
		if b, ok := byKey[key]; ok && len(b.Indices) > 0 {
			batches = append(batches, *b)
		}
	}
	if err := r.backend.Upload(batches); err != nil {
		return fmt.Errorf("upload scene version %d: %w", version, err)
	}
	r.synced = true
	r.syncedVersion = version
	r.uploads++
	return nil
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) Draw(view FrameView) error {
	if view.Camera == nil {
		return fmt.Errorf("draw: frame view has no camera")
	}
	return r.backend.Draw(view)
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Render(view FrameView) error {
	if err := r.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	err := r.Draw(view)
	r.EndFrame()
	r.Present()
	return err
}

func (r *renderer) Image() image.Image {
	return r.backend.Image()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.pipelineCache {
		p.Release()
	}
	r.pipelineCache = make(map[string]pipeline.Pipeline)
	r.pipelineOrder = nil
	r.synced = false
	r.backend.Release()
}
