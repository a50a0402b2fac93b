// Package webgpu draws a shared.Scene through wgpu on a glfw window.
package webgpu

import (
	"fmt"
	"os"
	"strings"

	"github.com/EngoEngine/glm"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rajveermalviya/go-webgpu/wgpu"
	wgpuext_glfw "github.com/rajveermalviya/go-webgpu/wgpuext/glfw"

	"hw01/shared"

	_ "embed"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	switch os.Getenv("WGPU_LOG_LEVEL") {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevel_Off)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevel_Error)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevel_Warn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevel_Info)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevel_Debug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevel_Trace)
	}
}

var positionLayout = wgpu.VertexBufferLayout{
	ArrayStride: 3 * 4,
	StepMode:    wgpu.VertexStepMode_Vertex,
	Attributes: []wgpu.VertexAttribute{
		{
			Format:         wgpu.VertexFormat_Float32x3,
			Offset:         0,
			ShaderLocation: 0,
		},
	},
}

var colorLayout = wgpu.VertexBufferLayout{
	ArrayStride: 4 * 4,
	StepMode:    wgpu.VertexStepMode_Vertex,
	Attributes: []wgpu.VertexAttribute{
		{
			Format:         wgpu.VertexFormat_Float32x4,
			Offset:         0,
			ShaderLocation: 1,
		},
	},
}

var alphaBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactor_SrcAlpha,
		DstFactor: wgpu.BlendFactor_OneMinusSrcAlpha,
		Operation: wgpu.BlendOperation_Add,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactor_SrcAlpha,
		DstFactor: wgpu.BlendFactor_OneMinusSrcAlpha,
		Operation: wgpu.BlendOperation_Add,
	},
}

//go:embed shader.wgsl
var shader string

type Renderer struct {
	scene        *shared.Scene
	surface      *wgpu.Surface
	swapChain    *wgpu.SwapChain
	depth        *wgpu.RenderPassDepthStencilAttachment
	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView
	device       *wgpu.Device
	queue        *wgpu.Queue
	config       *wgpu.SwapChainDescriptor
	vertexBuf    *wgpu.Buffer
	colorBuf     *wgpu.Buffer
	indexBuf     *wgpu.Buffer
	uniformBuf   *wgpu.Buffer
	pipeline     *wgpu.RenderPipeline
	bindGroup    *wgpu.BindGroup
	clear        wgpu.Color
	pending      bool
	// resizeErr holds a failed swap chain rebuild until the next Render.
	resizeErr error
}

func createDepthAttachment(device *wgpu.Device, config *wgpu.SwapChainDescriptor) (*wgpu.Texture, error) {
	return device.CreateTexture(&wgpu.TextureDescriptor{
		Size: wgpu.Extent3D{
			Width:              config.Width,
			Height:             config.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension_2D,
		Format:        wgpu.TextureFormat_Depth32Float,
		Usage:         wgpu.TextureUsage_RenderAttachment,
	})
}

func (r *Renderer) createRenderPassDepthAttachmentView() (*wgpu.RenderPassDepthStencilAttachment, error) {
	if r.depthView != nil {
		r.depthView.Release()
		r.depthView = nil
	}
	if r.depthTexture != nil {
		r.depthTexture.Release()
		r.depthTexture = nil
	}
	depth, err := createDepthAttachment(r.device, r.config)
	if err != nil {
		return nil, err
	}
	r.depthTexture = depth
	depthView, err := depth.CreateView(nil)
	if err != nil {
		return nil, err
	}
	r.depthView = depthView
	return &wgpu.RenderPassDepthStencilAttachment{
		View:            depthView,
		DepthLoadOp:     wgpu.LoadOp_Clear,
		DepthStoreOp:    wgpu.StoreOp_Store,
		DepthClearValue: 1.0,
		StencilLoadOp:   wgpu.LoadOp_Clear,
		StencilStoreOp:  wgpu.StoreOp_Store,
	}, nil
}

// New uploads the scene to a device presenting to window. The window must
// have been created with the NoAPI client hint.
func New(window *glfw.Window, scene *shared.Scene) (r *Renderer, err error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	r = &Renderer{scene: scene}
	defer func() {
		if err != nil {
			r.Release()
			r = nil
		}
	}()

	c := scene.ClearColor
	r.clear = wgpu.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	r.surface = instance.CreateSurface(wgpuext_glfw.GetSurfaceDescriptor(window))

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    r.surface,
		PowerPreference:      wgpu.PowerPreference_HighPerformance,
	})
	if err != nil {
		return r, err
	}
	defer adapter.Release()

	r.device, err = adapter.RequestDevice(nil)
	if err != nil {
		return r, err
	}
	r.queue = r.device.GetQueue()

	caps := r.surface.GetCapabilities(adapter)

	width, height := window.GetFramebufferSize()
	r.config = &wgpu.SwapChainDescriptor{
		Usage:       wgpu.TextureUsage_RenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentMode_Fifo,
		AlphaMode:   caps.AlphaModes[0],
	}

	r.swapChain, err = r.device.CreateSwapChain(r.surface, r.config)
	if err != nil {
		return r, err
	}
	if scene.DepthTest {
		r.depth, err = r.createRenderPassDepthAttachmentView()
		if err != nil {
			return r, err
		}
	}

	r.vertexBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    scene.Name + " Vertex Buffer",
		Contents: wgpu.ToBytes(scene.Positions),
		Usage:    wgpu.BufferUsage_Vertex,
	})
	if err != nil {
		return r, err
	}

	r.colorBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    scene.Name + " Color Buffer",
		Contents: wgpu.ToBytes(scene.Colors),
		Usage:    wgpu.BufferUsage_Vertex,
	})
	if err != nil {
		return r, err
	}

	if scene.Indexed() {
		r.indexBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    scene.Name + " Index Buffer",
			Contents: wgpu.ToBytes(scene.Indices),
			Usage:    wgpu.BufferUsage_Index,
		})
		if err != nil {
			return r, err
		}
	}

	identity := glm.Ident4()
	r.uniformBuf, err = r.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Uniform Buffer",
		Contents: wgpu.ToBytes(identity[:]),
		Usage:    wgpu.BufferUsage_Uniform | wgpu.BufferUsage_CopyDst,
	})
	if err != nil {
		return r, err
	}

	shader, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "shader.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shader},
	})
	if err != nil {
		return r, err
	}
	defer shader.Release()

	target := wgpu.ColorTargetState{
		Format:    r.config.Format,
		WriteMask: wgpu.ColorWriteMask_All,
	}
	if scene.Blend {
		target.Blend = &alphaBlend
	}

	var depthStencil *wgpu.DepthStencilState
	if scene.DepthTest {
		depthStencil = &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormat_Depth32Float,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunction_Less,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunction_Always,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunction_Always,
			},
		}
	}

	r.pipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: scene.Name + " Pipeline",
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{positionLayout, colorLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopology_TriangleList,
			FrontFace: wgpu.FrontFace_CCW,
			CullMode:  wgpu.CullMode_None,
		},
		DepthStencil: depthStencil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		return r, err
	}

	bindGroupLayout := r.pipeline.GetBindGroupLayout(0)
	defer bindGroupLayout.Release()

	r.bindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.uniformBuf,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return r, err
	}

	return r, nil
}

// Resize rebuilds the swap chain for the new framebuffer size. A failure is
// reported by the next Render.
func (r *Renderer) Resize(width, height int) {
	if width > 0 && height > 0 {
		r.config.Width = uint32(width)
		r.config.Height = uint32(height)

		if r.swapChain != nil {
			r.swapChain.Release()
			r.swapChain = nil
		}
		var err error
		r.swapChain, err = r.device.CreateSwapChain(r.surface, r.config)
		if err != nil {
			r.resizeErr = fmt.Errorf("resize swap chain: %w", err)
			return
		}
		if r.scene.DepthTest {
			r.depth, err = r.createRenderPassDepthAttachmentView()
			if err != nil {
				r.resizeErr = fmt.Errorf("resize depth buffer: %w", err)
				return
			}
		}
	}
}

// Transient reports whether a render error only cost the current frame.
func Transient(err error) bool {
	errstr := err.Error()
	switch {
	case strings.Contains(errstr, "Surface timed out"):
	case strings.Contains(errstr, "Surface is outdated"):
	case strings.Contains(errstr, "Surface was lost"):
	default:
		return false
	}
	return true
}

// Render records and submits one frame. Transient surface errors drop the
// frame without stopping the loop.
func (r *Renderer) Render(transform glm.Mat4) error {
	if err := r.resizeErr; err != nil {
		r.resizeErr = nil
		return err
	}
	err := r.render(transform)
	if err != nil && Transient(err) {
		return nil
	}
	return err
}

func (r *Renderer) render(transform glm.Mat4) error {
	nextTexture, err := r.swapChain.GetCurrentTextureView()
	if err != nil {
		return err
	}
	defer nextTexture.Release()

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       nextTexture,
				LoadOp:     wgpu.LoadOp_Clear,
				StoreOp:    wgpu.StoreOp_Store,
				ClearValue: r.clear,
			},
		},
		DepthStencilAttachment: r.depth,
	})
	defer renderPass.Release()

	r.queue.WriteBuffer(r.uniformBuf, 0, wgpu.ToBytes(transform[:]))

	renderPass.SetPipeline(r.pipeline)
	renderPass.SetBindGroup(0, r.bindGroup, nil)
	renderPass.SetVertexBuffer(0, r.vertexBuf, 0, wgpu.WholeSize)
	renderPass.SetVertexBuffer(1, r.colorBuf, 0, wgpu.WholeSize)
	if r.scene.Indexed() {
		renderPass.SetIndexBuffer(r.indexBuf, wgpu.IndexFormat_Uint32, 0, wgpu.WholeSize)
		renderPass.DrawIndexed(uint32(r.scene.IndexCount()), 1, 0, 0, 0)
	} else {
		renderPass.Draw(uint32(r.scene.VertexCount()), 1, 0, 0)
	}
	renderPass.End()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer cmdBuffer.Release()

	r.queue.Submit(cmdBuffer)
	r.pending = true
	return nil
}

func (r *Renderer) Present() {
	if r.pending {
		r.swapChain.Present()
		r.pending = false
	}
}

func (r *Renderer) Release() {
	if r.bindGroup != nil {
		r.bindGroup.Release()
		r.bindGroup = nil
	}
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
	if r.uniformBuf != nil {
		r.uniformBuf.Release()
		r.uniformBuf = nil
	}
	if r.indexBuf != nil {
		r.indexBuf.Release()
		r.indexBuf = nil
	}
	if r.colorBuf != nil {
		r.colorBuf.Release()
		r.colorBuf = nil
	}
	if r.vertexBuf != nil {
		r.vertexBuf.Release()
		r.vertexBuf = nil
	}
	if r.depthView != nil {
		r.depthView.Release()
		r.depthView = nil
	}
	if r.depthTexture != nil {
		r.depthTexture.Release()
		r.depthTexture = nil
	}
	if r.swapChain != nil {
		r.swapChain.Release()
		r.swapChain = nil
	}
	r.config = nil
	if r.queue != nil {
		r.queue.Release()
		r.queue = nil
	}
	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
	if r.surface != nil {
		r.surface.Release()
		r.surface = nil
	}
}
