package pipeline

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

// CullMode selects which triangle faces a pipeline discards.
type CullMode int

const (
	// CullModeNone draws both faces. Room surfaces are seen from inside and outside.
	CullModeNone CullMode = iota

	// CullModeBack discards faces wound clockwise on screen.
	CullModeBack
)

// pipeline is the implementation of the Pipeline interface.
// It holds backend-agnostic draw state plus the GPU pipeline object once a
// WebGPU backend has compiled it.
type pipeline struct {
	mu *sync.Mutex

	// pipelineKey is the unique identifier for this pipeline, matched against material pipeline keys
	pipelineKey string

	topology          model.Topology
	cullMode          CullMode
	depthTestEnabled  bool
	depthWriteEnabled bool
	// depthBias is added to fragment depth by the software backend so overlays win ties
	depthBias float64
	// lineWidth is the rasterized line width in pixels for line pipelines (software backend only)
	lineWidth float64

	// renderPipeline is set by the WebGPU backend, nil for the software backend
	renderPipeline *wgpu.RenderPipeline
}

// Pipeline defines the draw state shared by every node drawn with the same material
// pipeline key: primitive topology, culling and depth behaviour. Backends read it to
// build their native pipeline objects.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline, used for caching and lookups.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Topology returns the primitive topology the pipeline draws.
	//
	// Returns:
	//   - model.Topology: triangles or lines
	Topology() model.Topology

	// CullMode returns the face culling mode.
	//
	// Returns:
	//   - CullMode: the cull mode
	CullMode() CullMode

	// DepthTestEnabled reports whether fragments are tested against the depth buffer.
	//
	// Returns:
	//   - bool: true if depth testing is enabled
	DepthTestEnabled() bool

	// DepthWriteEnabled reports whether fragments write to the depth buffer.
	//
	// Returns:
	//   - bool: true if depth writes are enabled
	DepthWriteEnabled() bool

	// DepthBias returns the constant depth offset applied by the software backend.
	// Negative values pull fragments toward the camera.
	//
	// Returns:
	//   - float64: the depth offset in normalized device depth units
	DepthBias() float64

	// LineWidth returns the rasterized line width in pixels.
	//
	// Returns:
	//   - float64: the line width
	LineWidth() float64

	// RenderPipeline returns the compiled WebGPU pipeline, or nil if none has been created.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the compiled pipeline or nil
	RenderPipeline() *wgpu.RenderPipeline

	// SetRenderPipeline stores the compiled WebGPU pipeline.
	//
	// Parameters:
	//   - rp: the compiled pipeline
	SetRenderPipeline(rp *wgpu.RenderPipeline)

	// Release frees the compiled WebGPU pipeline if one exists.
	Release()
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new triangle Pipeline with depth testing and writing enabled
// and no culling. Options are applied in order.
//
// Parameters:
//   - options: variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance configured with the provided options
func NewPipeline(options ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		mu:                &sync.Mutex{},
		topology:          model.TopologyTriangles,
		cullMode:          CullModeNone,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		lineWidth:         1.5,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Topology() model.Topology {
	return p.topology
}

func (p *pipeline) CullMode() CullMode {
	return p.cullMode
}

func (p *pipeline) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipeline) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipeline) DepthBias() float64 {
	return p.depthBias
}

func (p *pipeline) LineWidth() float64 {
	return p.lineWidth
}

func (p *pipeline) RenderPipeline() *wgpu.RenderPipeline {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renderPipeline
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renderPipeline = rp
}

func (p *pipeline) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.renderPipeline != nil {
		p.renderPipeline.Release()
		p.renderPipeline = nil
	}
}
