package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline()
	if p.Topology() != model.TopologyTriangles {
		t.Errorf("Topology() = %v", p.Topology())
	}
	if p.CullMode() != CullModeNone {
		t.Errorf("CullMode() = %v", p.CullMode())
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Errorf("depth test/write = %v/%v, want both on", p.DepthTestEnabled(), p.DepthWriteEnabled())
	}
	if p.DepthBias() != 0 {
		t.Errorf("DepthBias() = %v", p.DepthBias())
	}
	if p.RenderPipeline() != nil {
		t.Error("RenderPipeline() should be nil before registration")
	}
}

func TestPipelineOptions(t *testing.T) {
	p := NewPipeline(
		WithPipelineKey("outline"),
		WithTopology(model.TopologyLines),
		WithCullMode(CullModeBack),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithDepthBias(-0.25),
		WithLineWidth(3),
	)
	if p.PipelineKey() != "outline" {
		t.Errorf("PipelineKey() = %q", p.PipelineKey())
	}
	if p.Topology() != model.TopologyLines || p.CullMode() != CullModeBack {
		t.Errorf("topology/cull = %v/%v", p.Topology(), p.CullMode())
	}
	if p.DepthTestEnabled() || p.DepthWriteEnabled() {
		t.Error("depth test and write should be off")
	}
	if p.DepthBias() != -0.25 || p.LineWidth() != 3 {
		t.Errorf("bias/width = %v/%v", p.DepthBias(), p.LineWidth())
	}
}

func TestWithLineWidthIgnoresNonPositive(t *testing.T) {
	for _, w := range []float64{0, -2} {
		p := NewPipeline(WithLineWidth(w))
		if p.LineWidth() != NewPipeline().LineWidth() {
			t.Errorf("WithLineWidth(%v) changed the width to %v", w, p.LineWidth())
		}
	}
}
