package renderer

import (
	_ "embed"
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-roomviz/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/light"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/model"
	"github.com/Carmen-Shannon/oxy-roomviz/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/room.wgsl
var roomShaderBody string

// roomShaderSource is the complete room shader: shared struct declarations followed by the entry points.
var roomShaderSource = model.GPUVertexSource + camera.GPUCameraUniformSource + light.GPULightRigSource + roomShaderBody

// frameUniformSize is the camera block followed by the light rig block.
const frameUniformSize = 160

// wgpuBatch is one uploaded Batch on the GPU.
type wgpuBatch struct {
	pipeline     pipeline.Pipeline
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
}

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor
	clearColor           wgpu.Color

	presentMode wgpu.PresentMode // defaults to PresentModeImmediate (Uncapped)
	sampleCount MSAASampleCount  // MSAA sample count for the main render pass

	// Shared by every room pipeline: one shader module and one uniform bind group.
	shaderModule    *wgpu.ShaderModule
	bindGroupLayout *wgpu.BindGroupLayout
	pipelineLayout  *wgpu.PipelineLayout
	uniformBuffer   *wgpu.Buffer
	bindGroup       *wgpu.BindGroup

	batches []wgpuBatch

	// Frame state for batched rendering across multiple draw calls
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) *wgpuRendererBackendImpl {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
		sampleCount: sampleCount,
		clearColor:  wgpu.Color{R: 1, G: 1, B: 1, A: 1},
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		panic(err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Room Device",
	})
	if err != nil {
		panic(err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w
}

func (b *wgpuRendererBackendImpl) Configure(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseTargets()

	count := uint32(b.sampleCount)
	msaaEnabled := count > 1

	if msaaEnabled {
		// The pass draws into the MSAA texture and resolves into the swapchain view.
		msaaTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Texture",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        *b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			panic(err)
		}
		b.msaaTexture = msaaTexture
		b.msaaTextureView, err = msaaTexture.CreateView(nil)
		if err != nil {
			panic(err)
		}
	}

	// Depth texture sample count must match the color attachment.
	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   count,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTexture = depthTexture
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	// With MSAA, View is the MSAA texture and ResolveTarget is set per frame to the
	// swapchain view. Without it, View is set per frame and ResolveTarget stays nil.
	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.msaaTextureView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    storeOp,
				ClearValue: b.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

// releaseTargets frees size dependent textures. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) releaseTargets() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeVSync:
		b.presentMode = wgpu.PresentModeFifo
	case PresentModeUncapped:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeImmediate
	}
}

func (b *wgpuRendererBackendImpl) SetClearColor(rgba [4]float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clearColor = wgpu.Color{R: float64(rgba[0]), G: float64(rgba[1]), B: float64(rgba[2]), A: float64(rgba[3])}
	if b.renderPassDescriptor != nil {
		b.renderPassDescriptor.ColorAttachments[0].ClearValue = b.clearColor
	}
}

// initSharedResources creates the shader module, uniform buffer and bind group on first use.
// Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) initSharedResources() error {
	if b.pipelineLayout != nil {
		return nil
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Room Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: roomShaderSource,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create room shader module: %w", err)
	}
	b.shaderModule = module

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Frame Uniform Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: frameUniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group layout: %w", err)
	}
	b.bindGroupLayout = layout

	b.uniformBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Frame Uniform Buffer",
		Size:  frameUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create uniform buffer: %w", err)
	}

	b.bindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Frame Uniform Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  b.uniformBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group: %w", err)
	}

	b.pipelineLayout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Room Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return fmt.Errorf("failed to create pipeline layout: %w", err)
	}
	return nil
}

func (b *wgpuRendererBackendImpl) RegisterPipeline(p pipeline.Pipeline) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surfaceFormat == nil {
		return fmt.Errorf("surface must be configured before pipelines are registered")
	}
	if err := b.initSharedResources(); err != nil {
		return err
	}

	topology := wgpu.PrimitiveTopologyTriangleList
	if p.Topology() == model.TopologyLines {
		topology = wgpu.PrimitiveTopologyLineList
	}
	cullMode := wgpu.CullModeNone
	if p.CullMode() == pipeline.CullModeBack {
		cullMode = wgpu.CullModeBack
	}
	depthCompare := wgpu.CompareFunctionLess
	switch {
	case !p.DepthTestEnabled():
		depthCompare = wgpu.CompareFunctionAlways
	case p.DepthBias() < 0:
		// Line topologies cannot carry a hardware depth bias; let them win ties instead.
		depthCompare = wgpu.CompareFunctionLessEqual
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: b.pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     b.shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: model.GPUVertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     b.shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: p.DepthWriteEnabled(),
			DepthCompare:      depthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return err
	}

	p.SetRenderPipeline(created)
	return nil
}

func (b *wgpuRendererBackendImpl) Upload(batches []Batch) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	uploaded := make([]wgpuBatch, 0, len(batches))
	release := func() {
		for _, u := range uploaded {
			u.vertexBuffer.Release()
			u.indexBuffer.Release()
		}
	}
	for _, batch := range batches {
		vertexData := model.MarshalVertices(batch.Vertices)
		indexData := model.MarshalIndices(batch.Indices)
		if len(vertexData) == 0 || len(indexData) == 0 {
			continue
		}

		vb, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: batch.Pipeline.PipelineKey() + " Vertex Buffer",
			Size:  uint64(len(vertexData)),
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			release()
			return err
		}
		ib, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: batch.Pipeline.PipelineKey() + " Index Buffer",
			Size:  uint64(len(indexData)),
			Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			vb.Release()
			release()
			return err
		}
		b.queue.WriteBuffer(vb, 0, vertexData)
		b.queue.WriteBuffer(ib, 0, indexData)
		uploaded = append(uploaded, wgpuBatch{
			pipeline:     batch.Pipeline,
			vertexBuffer: vb,
			indexBuffer:  ib,
			indexCount:   uint32(len(batch.Indices)),
		})
	}

	b.releaseBatches()
	b.batches = uploaded
	return nil
}

// releaseBatches frees the uploaded geometry. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) releaseBatches() {
	for _, batch := range b.batches {
		batch.vertexBuffer.Release()
		batch.indexBuffer.Release()
	}
	b.batches = nil
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// A surface image still held from the previous frame cannot be acquired twice.
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	if b.sampleCount > 1 {
		b.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		b.renderPassDescriptor.ColorAttachments[0].View = view
	}
	pass := encoder.BeginRenderPass(b.renderPassDescriptor)

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) Draw(view FrameView) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return fmt.Errorf("draw called outside BeginFrame/EndFrame")
	}

	cam := camera.NewGPUCameraUniform(view.Camera)
	rig := light.NewGPULightRig(view.Lights)
	uniform := append(cam.Marshal(), rig.Marshal()...)
	b.queue.WriteBuffer(b.uniformBuffer, 0, uniform)

	for _, batch := range b.batches {
		rp := batch.pipeline.RenderPipeline()
		if rp == nil {
			return fmt.Errorf("render pipeline %q was not compiled", batch.pipeline.PipelineKey())
		}
		b.framePass.SetPipeline(rp)
		b.framePass.SetBindGroup(0, b.bindGroup, nil)
		b.framePass.SetVertexBuffer(0, batch.vertexBuffer, 0, wgpu.WholeSize)
		b.framePass.SetIndexBuffer(batch.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		b.framePass.DrawIndexed(batch.indexCount, 1, 0, 0, 0)
	}
	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}
	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

// Image is unsupported: the swapchain image is not read back.
func (b *wgpuRendererBackendImpl) Image() image.Image {
	return nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.releaseBatches()
	b.releaseTargets()
	if b.bindGroup != nil {
		b.bindGroup.Release()
		b.bindGroup = nil
	}
	if b.uniformBuffer != nil {
		b.uniformBuffer.Release()
		b.uniformBuffer = nil
	}
	if b.pipelineLayout != nil {
		b.pipelineLayout.Release()
		b.pipelineLayout = nil
	}
	if b.bindGroupLayout != nil {
		b.bindGroupLayout.Release()
		b.bindGroupLayout = nil
	}
	if b.shaderModule != nil {
		b.shaderModule.Release()
		b.shaderModule = nil
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
