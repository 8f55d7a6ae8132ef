// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Interface conformance.
var (
	_ Instance = (*WebGPUInstance)(nil)
	_ Adapter  = (*WebGPUAdapter)(nil)
	_ Device   = (*WebGPUDevice)(nil)
	_ Surface  = (*WebGPUSurface)(nil)
)

// NewWebGPUInstance creates an instance of the platform's first-tier
// supported backend family (Vulkan, Metal, DX12 or browser WebGPU).
func NewWebGPUInstance() *WebGPUInstance {
	return &WebGPUInstance{instance: wgpu.CreateInstance(nil)}
}

// WebGPUInstance implements Instance on the WebGPU API
type WebGPUInstance struct {
	instance *wgpu.Instance
}

// CreateSurface binds a platform window surface to this instance. The
// window behind the descriptor must stay valid for the surface's
// lifetime.
func (i *WebGPUInstance) CreateSurface(desc *wgpu.SurfaceDescriptor) *WebGPUSurface {
	return &WebGPUSurface{surface: i.instance.CreateSurface(desc)}
}

// RequestAdapter implements interface
func (i *WebGPUInstance) RequestAdapter(opts AdapterOptions) (Adapter, error) {
	wopts := wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: false,
	}
	switch opts.Power {
	case LowPower:
		wopts.PowerPreference = wgpu.PowerPreferenceLowPower
	default:
		wopts.PowerPreference = wgpu.PowerPreferenceHighPerformance
	}
	if opts.CompatibleSurface != nil {
		ws, ok := opts.CompatibleSurface.(*WebGPUSurface)
		if !ok {
			return nil, errors.New("core: surface does not belong to the WebGPU backend")
		}
		wopts.CompatibleSurface = ws.surface
	}

	adapter, err := i.instance.RequestAdapter(&wopts)
	if err != nil {
		return nil, errors.Wrapf(ErrNoCompatibleAdapter, "%v", err)
	}

	wa := &WebGPUAdapter{adapter: adapter, info: adapterInfo(adapter)}
	if !opts.AllowFallback && wa.info.Kind == SoftwareDevice {
		return nil, ErrSoftwareAdapter
	}
	return wa, nil
}

func adapterInfo(adapter *wgpu.Adapter) AdapterInfo {
	return convertAdapterInfo(adapter.GetInfo())
}

func convertAdapterInfo(info wgpu.AdapterInfo) AdapterInfo {
	kind := UnknownDevice
	switch info.AdapterType {
	case wgpu.AdapterTypeDiscreteGPU:
		kind = DiscreteDevice
	case wgpu.AdapterTypeIntegratedGPU:
		kind = IntegratedDevice
	case wgpu.AdapterTypeCPU:
		kind = SoftwareDevice
	}

	backend := UnknownBackend
	switch info.BackendType {
	case wgpu.BackendTypeVulkan:
		backend = Vulkan
	case wgpu.BackendTypeMetal:
		backend = Metal
	case wgpu.BackendTypeD3D12:
		backend = D3D12
	case wgpu.BackendTypeD3D11:
		backend = D3D11
	case wgpu.BackendTypeOpenGL, wgpu.BackendTypeOpenGLES:
		backend = OpenGL
	case wgpu.BackendTypeWebGPU:
		backend = WebGPU
	}

	return AdapterInfo{
		VendorID: info.VendorId,
		DeviceID: info.DeviceId,
		Name:     info.Name,
		Kind:     kind,
		Backend:  backend,
	}
}

// WebGPUAdapter implements Adapter on the WebGPU API
type WebGPUAdapter struct {
	adapter *wgpu.Adapter
	info    AdapterInfo
}

// Info implements interface
func (a *WebGPUAdapter) Info() AdapterInfo {
	return a.info
}

// RequestDevice implements interface
func (a *WebGPUAdapter) RequestDevice(desc DeviceDescriptor) (Device, error) {
	limits := wgpu.DefaultLimits()
	limits.MaxTextureDimension2D = desc.Limits.MaxTextureDimension2D
	limits.MaxBufferSize = desc.Limits.MaxBufferSize

	device, err := a.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: desc.Label,
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: limits,
		},
	})
	if err != nil {
		// wgpu rejects the open rather than clamping the request
		return nil, errors.Wrapf(ErrUnsatisfiableLimits, "%v", err)
	}

	return &WebGPUDevice{
		device: device,
		queue:  &WebGPUQueue{queue: device.GetQueue()},
	}, nil
}

// WebGPUDevice implements Device on the WebGPU API
type WebGPUDevice struct {
	device *wgpu.Device
	queue  *WebGPUQueue
}

// Queue implements interface
func (d *WebGPUDevice) Queue() Queue {
	return d.queue
}

// LoadShader implements interface
func (d *WebGPUDevice) LoadShader(label, source string) (Shader, error) {
	module, err := d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: source,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "core: shader %q rejected", label)
	}
	return &WebGPUShader{module: module, label: label}, nil
}

// CreateVertexBuffer implements interface
func (d *WebGPUDevice) CreateVertexBuffer(label string, contents []byte) (Buffer, error) {
	buffer, err := d.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "core: vertex buffer %q allocation failed", label)
	}
	return &WebGPUBuffer{buffer: buffer, size: uint64(len(contents))}, nil
}

// CreatePipeline implements interface
func (d *WebGPUDevice) CreatePipeline(desc PipelineDescriptor) (Pipeline, error) {
	shader, ok := desc.Shader.(*WebGPUShader)
	if !ok {
		return nil, errors.New("core: shader does not belong to the WebGPU backend")
	}

	layout := wgpu.VertexBufferLayout{
		ArrayStride: desc.Layout.Stride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  make([]wgpu.VertexAttribute, 0, len(desc.Layout.Attributes)),
	}
	if desc.Layout.Step == StepPerInstance {
		layout.StepMode = wgpu.VertexStepModeInstance
	}
	for _, attr := range desc.Layout.Attributes {
		format := wgpu.VertexFormatFloat32x3
		if attr.Format == Float32x4 {
			format = wgpu.VertexFormatFloat32x4
		}
		layout.Attributes = append(layout.Attributes, wgpu.VertexAttribute{
			Format:         format,
			Offset:         attr.Offset,
			ShaderLocation: attr.Location,
		})
	}

	pipeline, err := d.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: desc.Label,
		Vertex: wgpu.VertexState{
			Module:     shader.module,
			EntryPoint: desc.VertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{layout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader.module,
			EntryPoint: desc.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    wgpu.TextureFormat(desc.TargetFormat),
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "core: pipeline %q rejected", desc.Label)
	}
	return &WebGPUPipeline{pipeline: pipeline, format: desc.TargetFormat}, nil
}

// NewEncoder implements interface
func (d *WebGPUDevice) NewEncoder() (Encoder, error) {
	encoder, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, errors.Wrap(err, "core: command encoder creation failed")
	}
	return &WebGPUEncoder{encoder: encoder}, nil
}

// WebGPUQueue implements Queue on the WebGPU API
type WebGPUQueue struct {
	queue *wgpu.Queue
}

// Submit implements interface
func (q *WebGPUQueue) Submit(buf CommandBuffer) {
	wb, ok := buf.(*WebGPUCommandBuffer)
	if !ok {
		return
	}
	q.queue.Submit(wb.buffer)
}

// WebGPUSurface implements Surface on the WebGPU API
type WebGPUSurface struct {
	surface *wgpu.Surface
	alpha   wgpu.CompositeAlphaMode
}

// PreferredFormat implements interface
func (s *WebGPUSurface) PreferredFormat(adapter Adapter) (TextureFormat, error) {
	wa, ok := adapter.(*WebGPUAdapter)
	if !ok {
		return UndefinedFormat, errors.New("core: adapter does not belong to the WebGPU backend")
	}

	caps := s.surface.GetCapabilities(wa.adapter)
	if len(caps.Formats) == 0 {
		return UndefinedFormat, ErrNoPresentableFormat
	}
	if len(caps.AlphaModes) > 0 {
		s.alpha = caps.AlphaModes[0]
	}
	return TextureFormat(caps.Formats[0]), nil
}

// Configure implements interface
func (s *WebGPUSurface) Configure(adapter Adapter, device Device, cfg PresentationConfiguration) error {
	wa, ok := adapter.(*WebGPUAdapter)
	if !ok {
		return errors.New("core: adapter does not belong to the WebGPU backend")
	}
	wd, ok := device.(*WebGPUDevice)
	if !ok {
		return errors.New("core: device does not belong to the WebGPU backend")
	}

	mode := wgpu.PresentModeImmediate
	switch cfg.PresentMode {
	case Mailbox:
		mode = wgpu.PresentModeMailbox
	case Fifo:
		mode = wgpu.PresentModeFifo
	}

	s.surface.Configure(wa.adapter, wd.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormat(cfg.Format),
		Width:       cfg.Width,
		Height:      cfg.Height,
		PresentMode: mode,
		AlphaMode:   s.alpha,
	})
	return nil
}

// Acquire implements interface
func (s *WebGPUSurface) Acquire() (Frame, error) {
	texture, err := s.surface.GetCurrentTexture()
	if err != nil {
		return nil, errors.Wrapf(ErrSurfaceLost, "%v", err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, errors.Wrap(err, "core: frame view creation failed")
	}

	return &WebGPUFrame{surface: s, texture: texture, view: view}, nil
}

// WebGPUFrame implements Frame on the WebGPU API
type WebGPUFrame struct {
	surface *WebGPUSurface
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

// Present implements interface
func (f *WebGPUFrame) Present() error {
	f.surface.surface.Present()
	f.release()
	return nil
}

// Discard implements interface
func (f *WebGPUFrame) Discard() {
	f.release()
}

func (f *WebGPUFrame) release() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

// WebGPUEncoder implements Encoder on the WebGPU API
type WebGPUEncoder struct {
	encoder *wgpu.CommandEncoder
}

// BeginPass implements interface
func (e *WebGPUEncoder) BeginPass(frame Frame, clear Color) (Pass, error) {
	wf, ok := frame.(*WebGPUFrame)
	if !ok {
		return nil, errors.New("core: frame does not belong to the WebGPU backend")
	}
	if wf.view == nil {
		return nil, ErrFramePresented
	}

	pass := e.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    wf.view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: clear.R, G: clear.G, B: clear.B, A: clear.A,
			},
		}},
	})
	return &WebGPUPass{pass: pass}, nil
}

// Finish implements interface
func (e *WebGPUEncoder) Finish() (CommandBuffer, error) {
	buffer, err := e.encoder.Finish(nil)
	if err != nil {
		e.encoder.Release()
		return nil, errors.Wrap(err, "core: command encoding failed")
	}
	e.encoder.Release()
	return &WebGPUCommandBuffer{buffer: buffer}, nil
}

// WebGPUPass implements Pass on the WebGPU API
type WebGPUPass struct {
	pass *wgpu.RenderPassEncoder
}

// BindPipeline implements interface
func (p *WebGPUPass) BindPipeline(pipeline Pipeline) {
	wp, ok := pipeline.(*WebGPUPipeline)
	if !ok {
		return
	}
	p.pass.SetPipeline(wp.pipeline)
}

// BindVertexBuffer implements interface
func (p *WebGPUPass) BindVertexBuffer(slot uint32, buffer Buffer) {
	wb, ok := buffer.(*WebGPUBuffer)
	if !ok {
		return
	}
	p.pass.SetVertexBuffer(slot, wb.buffer, 0, wgpu.WholeSize)
}

// Draw implements interface
func (p *WebGPUPass) Draw(vertexCount, instanceCount uint32) {
	p.pass.Draw(vertexCount, instanceCount, 0, 0)
}

// End implements interface
func (p *WebGPUPass) End() {
	p.pass.End()
	p.pass.Release()
}

// WebGPUCommandBuffer implements CommandBuffer on the WebGPU API
type WebGPUCommandBuffer struct {
	buffer *wgpu.CommandBuffer
}

// Release implements interface
func (b *WebGPUCommandBuffer) Release() {
	b.buffer.Release()
}

// WebGPUShader implements Shader on the WebGPU API
type WebGPUShader struct {
	module *wgpu.ShaderModule
	label  string
}

// Label implements interface
func (s *WebGPUShader) Label() string {
	return s.label
}

// WebGPUBuffer implements Buffer on the WebGPU API
type WebGPUBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
}

// Size implements interface
func (b *WebGPUBuffer) Size() uint64 {
	return b.size
}

// WebGPUPipeline implements Pipeline on the WebGPU API
type WebGPUPipeline struct {
	pipeline *wgpu.RenderPipeline
	format   TextureFormat
}

// Format implements interface
func (p *WebGPUPipeline) Format() TextureFormat {
	return p.format
}
