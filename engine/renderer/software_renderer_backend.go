package renderer

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/light"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/pipeline"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
)

// softwareBatch is one uploaded Batch converted to rasterizer primitives.
type softwareBatch struct {
	pipeline pipeline.Pipeline
	mesh     *fauxgl.Mesh
	lines    []*fauxgl.Line
}

// softwareRendererBackendImpl rasterizes on the CPU with fauxgl. Frames are kept in
// memory and read back through Image. With a scale above 1 the frame is rasterized
// that many times larger and filtered down, which smooths edges the way MSAA does on the GPU.
type softwareRendererBackendImpl struct {
	mu *sync.Mutex

	scale         int
	width, height int

	context    *fauxgl.Context
	clearColor fauxgl.Color
	batches    []softwareBatch

	inFrame bool
	last    *image.NRGBA
}

var _ RendererBackend = &softwareRendererBackendImpl{}

func newSoftwareRendererBackend(scale int) *softwareRendererBackendImpl {
	return &softwareRendererBackendImpl{
		mu:         &sync.Mutex{},
		scale:      max(scale, 1),
		clearColor: fauxgl.Color{R: 1, G: 1, B: 1, A: 1},
	}
}

func (b *softwareRendererBackendImpl) Configure(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.context != nil && b.width == width && b.height == height {
		return
	}
	b.width, b.height = width, height
	b.context = fauxgl.NewContext(width*b.scale, height*b.scale)
}

// SetPresentMode has nothing to present to.
func (b *softwareRendererBackendImpl) SetPresentMode(PresentMode) {}

func (b *softwareRendererBackendImpl) SetClearColor(rgba [4]float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearColor = fauxgl.Color{R: float64(rgba[0]), G: float64(rgba[1]), B: float64(rgba[2]), A: float64(rgba[3])}
}

// RegisterPipeline has no native state to build; pipelines are read at draw time.
func (b *softwareRendererBackendImpl) RegisterPipeline(pipeline.Pipeline) error {
	return nil
}

func (b *softwareRendererBackendImpl) Upload(batches []Batch) error {
	converted := make([]softwareBatch, 0, len(batches))
	for _, batch := range batches {
		sb := softwareBatch{pipeline: batch.Pipeline}
		var triangles []*fauxgl.Triangle
		n := len(batch.Vertices)
		step := batch.Pipeline.Topology().IndicesPerPrimitive()
		if len(batch.Indices)%step != 0 {
			return fmt.Errorf("%s batch has %d indices, not a multiple of %d", batch.Pipeline.PipelineKey(), len(batch.Indices), step)
		}
		for i := 0; i < len(batch.Indices); i += step {
			for _, idx := range batch.Indices[i : i+step] {
				if int(idx) >= n {
					return fmt.Errorf("%s batch index %d out of range for %d vertices", batch.Pipeline.PipelineKey(), idx, n)
				}
			}
			switch batch.Pipeline.Topology() {
			case model.TopologyLines:
				sb.lines = append(sb.lines, &fauxgl.Line{
					V1: toFauxglVertex(batch.Vertices[batch.Indices[i]]),
					V2: toFauxglVertex(batch.Vertices[batch.Indices[i+1]]),
				})
			default:
				triangles = append(triangles, &fauxgl.Triangle{
					V1: toFauxglVertex(batch.Vertices[batch.Indices[i]]),
					V2: toFauxglVertex(batch.Vertices[batch.Indices[i+1]]),
					V3: toFauxglVertex(batch.Vertices[batch.Indices[i+2]]),
				})
			}
		}
		if len(triangles) > 0 {
			sb.mesh = fauxgl.NewTriangleMesh(triangles)
		}
		converted = append(converted, sb)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.batches = converted
	return nil
}

func (b *softwareRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.context == nil {
		return fmt.Errorf("render target not configured")
	}
	b.context.ClearColorBufferWith(b.clearColor)
	b.context.ClearDepthBuffer()
	b.inFrame = true
	return nil
}

func (b *softwareRendererBackendImpl) Draw(view FrameView) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inFrame {
		return fmt.Errorf("draw called outside BeginFrame/EndFrame")
	}

	cam := view.Camera
	px, py, pz := cam.Position()
	tx, ty, tz := cam.Target()
	ux, uy, uz := cam.Up()
	matrix := fauxgl.LookAt(
		fauxgl.Vector{X: float64(px), Y: float64(py), Z: float64(pz)},
		fauxgl.Vector{X: float64(tx), Y: float64(ty), Z: float64(tz)},
		fauxgl.Vector{X: float64(ux), Y: float64(uy), Z: float64(uz)},
	).Perspective(float64(cam.Fov())*180/math.Pi, float64(cam.Aspect()), float64(cam.Near()), float64(cam.Far()))

	ctx := b.context
	ctx.Shader = &roomShader{matrix: matrix, lights: view.Lights}
	for _, batch := range b.batches {
		p := batch.pipeline
		ctx.Cull = fauxgl.CullNone
		if p.CullMode() == pipeline.CullModeBack {
			ctx.Cull = fauxgl.CullBack
		}
		ctx.ReadDepth = p.DepthTestEnabled()
		ctx.WriteDepth = p.DepthWriteEnabled()
		ctx.DepthBias = p.DepthBias()
		ctx.LineWidth = p.LineWidth() * float64(b.scale)
		if batch.mesh != nil {
			ctx.DrawMesh(batch.mesh)
		}
		if len(batch.lines) > 0 {
			ctx.DrawLines(batch.lines)
		}
	}
	return nil
}

func (b *softwareRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inFrame {
		return
	}
	b.inFrame = false
	var src image.Image = b.context.Image()
	if b.scale > 1 {
		src = resize.Resize(uint(b.width), uint(b.height), src, resize.Bilinear)
	}
	frame := image.NewNRGBA(src.Bounds())
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
	b.last = frame
}

// Present is a no-op: finished frames are already available through Image.
func (b *softwareRendererBackendImpl) Present() {}

func (b *softwareRendererBackendImpl) Image() image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.last == nil {
		return nil
	}
	return b.last
}

func (b *softwareRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.batches = nil
	b.context = nil
	b.last = nil
	b.inFrame = false
}

func toFauxglVertex(v model.GPUVertex) fauxgl.Vertex {
	return fauxgl.Vertex{
		Position: fauxgl.Vector{X: float64(v.Position[0]), Y: float64(v.Position[1]), Z: float64(v.Position[2])},
		Normal:   fauxgl.Vector{X: float64(v.Normal[0]), Y: float64(v.Normal[1]), Z: float64(v.Normal[2])},
		Color:    fauxgl.Color{R: float64(v.Color[0]), G: float64(v.Color[1]), B: float64(v.Color[2]), A: float64(v.Color[3])},
	}
}

// roomShader is the CPU counterpart of assets/room.wgsl: world-space vertices through
// the view-projection matrix, two-sided Lambert lighting, and unlit zero-normal lines.
type roomShader struct {
	matrix fauxgl.Matrix
	lights []light.Light
}

func (s *roomShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	v.Output = s.matrix.MulPositionW(v.Position)
	return v
}

func (s *roomShader) Fragment(v fauxgl.Vertex) fauxgl.Color {
	shaded := light.Shade(s.lights,
		[3]float32{float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z)},
		[4]float32{float32(v.Color.R), float32(v.Color.G), float32(v.Color.B), float32(v.Color.A)},
	)
	return fauxgl.Color{R: float64(shaded[0]), G: float64(shaded[1]), B: float64(shaded[2]), A: float64(shaded[3])}
}
