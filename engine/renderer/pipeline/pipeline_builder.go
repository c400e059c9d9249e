package pipeline

import (
	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
)

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithPipelineKey sets the unique key for this pipeline. Materials select a pipeline by this key.
//
// Parameters:
//   - key: the unique key for this pipeline
//
// Returns:
//   - PipelineBuilderOption: a function that sets the pipeline key for this pipeline
func WithPipelineKey(key string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.pipelineKey = key
	}
}

// WithTopology sets the primitive topology for this pipeline.
//
// Parameters:
//   - topology: triangles or lines
//
// Returns:
//   - PipelineBuilderOption: a function that sets the topology for this pipeline
func WithTopology(topology model.Topology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithCullMode sets the face culling mode for this pipeline.
//
// Parameters:
//   - mode: the cull mode
//
// Returns:
//   - PipelineBuilderOption: a function that sets the cull mode for this pipeline
func WithCullMode(mode CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithDepthTestEnabled sets whether depth testing is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether depth testing should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth test enabled state for this pipeline
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled sets whether depth writing is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether depth writing should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth write enabled state for this pipeline
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithDepthBias sets the constant depth offset used by the software backend.
//
// Parameters:
//   - bias: depth offset; negative values pull fragments toward the camera
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth bias for this pipeline
func WithDepthBias(bias float64) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthBias = bias
	}
}

// WithLineWidth sets the rasterized line width in pixels. Values ≤ 0 are ignored.
//
// Parameters:
//   - width: line width in pixels
//
// Returns:
//   - PipelineBuilderOption: a function that sets the line width for this pipeline
func WithLineWidth(width float64) PipelineBuilderOption {
	return func(p *pipeline) {
		if width > 0 {
			p.lineWidth = width
		}
	}
}
