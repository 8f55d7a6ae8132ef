// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/cockroachdb/errors"
)

// Package errors. All of them are fatal to the run that encounters
// them, none are retried by the harness itself.
var (
	// ErrNoCompatibleAdapter means no physical adapter declared
	// compatibility with the presentation surface.
	ErrNoCompatibleAdapter = errors.New("core: no adapter compatible with surface")

	// ErrSoftwareAdapter means the backend only offered a
	// software-emulated adapter and fallbacks are disallowed.
	ErrSoftwareAdapter = errors.New("core: software fallback adapter rejected")

	// ErrUnsatisfiableLimits means the device open was rejected because
	// the requested limits exceed what the adapter exposes.
	ErrUnsatisfiableLimits = errors.New("core: requested limits exceed adapter limits")

	// ErrNoPresentableFormat means the adapter/surface pair reports no
	// usable presentation format.
	ErrNoPresentableFormat = errors.New("core: surface reports no presentable format")

	// ErrStaleConfiguration means the surface configuration no longer
	// matches the drawable and must be re-applied before acquisition.
	ErrStaleConfiguration = errors.New("core: surface configuration is stale")

	// ErrFrameOutstanding means a frame was requested while the
	// previously acquired frame is still live.
	ErrFrameOutstanding = errors.New("core: previous frame not yet presented")

	// ErrFramePresented means a frame token was presented or discarded
	// and then used again.
	ErrFramePresented = errors.New("core: frame token already consumed")

	// ErrFormatMismatch means a pipeline was built against, or used
	// with, a color format different from the surface's format.
	ErrFormatMismatch = errors.New("core: pipeline and surface formats differ")

	// ErrSurfaceLost means the backend lost the presentation surface.
	ErrSurfaceLost = errors.New("core: surface lost")
)

// Instance describes an open handle to one graphics API family.
// Once created it is ready to negotiate adapters.
type Instance interface {
	// RequestAdapter selects one physical adapter according to the
	// given options. Blocks until the backend responds.
	RequestAdapter(AdapterOptions) (Adapter, error)
}

// Adapter describes a physical graphics/compute device. It is queried
// once during negotiation and only used to open a logical device and
// for diagnostics.
type Adapter interface {
	// Info returns the identity of the physical device
	Info() AdapterInfo

	// RequestDevice opens the logical device and its submission queue.
	// Limits the adapter cannot satisfy fail here, they are never
	// silently clamped. Blocks until the backend responds.
	RequestDevice(DeviceDescriptor) (Device, error)
}

// Device describes the logical device. All GPU resources are created
// through it. It is exclusively owned for the process lifetime.
type Device interface {
	// Queue returns the device's single submission queue
	Queue() Queue

	// LoadShader compiles one opaque shader unit from WGSL source
	LoadShader(label, source string) (Shader, error)

	// CreateVertexBuffer allocates a vertex-usage buffer and fills it
	// with contents in one bulk initializing transfer
	CreateVertexBuffer(label string, contents []byte) (Buffer, error)

	// CreatePipeline builds one immutable render pipeline
	CreatePipeline(PipelineDescriptor) (Pipeline, error)

	// NewEncoder opens a command recording scope
	NewEncoder() (Encoder, error)
}

// Queue is the device's command submission queue. Submission order
// must match the order in which command buffers were recorded.
type Queue interface {
	Submit(CommandBuffer)
}

// Surface binds one presentation target to the backend. The concrete
// type behind it must only be used through a configured swapchain.
type Surface interface {
	// PreferredFormat queries the presentable pixel format the
	// adapter/surface pair wants. Implementations must treat the
	// first reported format as the preferred one.
	PreferredFormat(Adapter) (TextureFormat, error)

	// Configure (re)applies the presentation configuration
	Configure(Adapter, Device, PresentationConfiguration) error

	// Acquire requests the next presentable frame
	Acquire() (Frame, error)
}

// Frame is one acquired presentable image. Valid only within the loop
// iteration that acquired it.
type Frame interface {
	// Present hands the frame to the display and invalidates it
	Present() error

	// Discard invalidates the frame without presenting it
	Discard()
}

// Encoder is one command recording scope.
type Encoder interface {
	// BeginPass opens a render pass against the frame's image view,
	// clearing to the given color on load and storing on end
	BeginPass(Frame, Color) (Pass, error)

	// Finish closes the recording scope into a finished sequence
	Finish() (CommandBuffer, error)
}

// Pass is one open render pass.
type Pass interface {
	BindPipeline(Pipeline)
	BindVertexBuffer(slot uint32, buffer Buffer)
	Draw(vertexCount, instanceCount uint32)
	End()
}

// CommandBuffer is a finished, submittable command sequence.
type CommandBuffer interface {
	// Release frees the recorded sequence after submission
	Release()
}

// Shader is one opaque compiled shader unit. The harness never looks
// inside it, it only feeds it to the pipeline builder.
type Shader interface {
	Label() string
}

// Buffer is a GPU-resident buffer.
type Buffer interface {
	// Size returns the buffer length in bytes
	Size() uint64
}

// Pipeline is an immutable pipeline state object.
type Pipeline interface {
	// Format returns the color target format the pipeline was built
	// against. It must equal the surface format whenever the pipeline
	// is used for drawing.
	Format() TextureFormat
}

// Backend identifies the graphics API family behind an adapter.
type Backend int

// Supported backend families.
const (
	UnknownBackend Backend = iota
	Vulkan
	Metal
	D3D12
	D3D11
	OpenGL
	WebGPU
)

func (b Backend) String() string {
	switch b {
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case D3D12:
		return "D3D12"
	case D3D11:
		return "D3D11"
	case OpenGL:
		return "OpenGL"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// DeviceKind classifies a physical adapter.
type DeviceKind int

// Adapter classes, in rough order of preference.
const (
	UnknownDevice DeviceKind = iota
	DiscreteDevice
	IntegratedDevice
	SoftwareDevice
)

func (k DeviceKind) String() string {
	switch k {
	case DiscreteDevice:
		return "Discrete"
	case IntegratedDevice:
		return "Integrated"
	case SoftwareDevice:
		return "Software"
	default:
		return "Unknown"
	}
}

// AdapterInfo identifies a physical adapter for selection and
// diagnostics.
type AdapterInfo struct {
	VendorID uint32
	DeviceID uint32
	Name     string
	Kind     DeviceKind
	Backend  Backend
}

// PowerPreference states which adapter class negotiation favors.
type PowerPreference int

// Power preferences.
const (
	// HighPerformance prefers the discrete GPU over the integrated one
	HighPerformance PowerPreference = iota
	LowPower
)

// AdapterOptions constrain adapter selection.
type AdapterOptions struct {
	Power PowerPreference

	// AllowFallback permits software-emulated adapters
	AllowFallback bool

	// CompatibleSurface, when set, requires the chosen adapter to be
	// able to present on it
	CompatibleSurface Surface
}

// Limits is the minimal limit contract requested at device open.
type Limits struct {
	MaxTextureDimension2D uint32
	MaxBufferSize         uint64
}

// DefaultLimits returns the baseline limit request every backend is
// expected to satisfy.
func DefaultLimits() Limits {
	return Limits{
		MaxTextureDimension2D: 8192,
		MaxBufferSize:         256 * 1024 * 1024,
	}
}

// Satisfies reports whether l covers the requested limits.
func (l Limits) Satisfies(req Limits) bool {
	return l.MaxTextureDimension2D >= req.MaxTextureDimension2D &&
		l.MaxBufferSize >= req.MaxBufferSize
}

// DeviceDescriptor is the explicit feature/limit request for a
// logical device open.
type DeviceDescriptor struct {
	Label  string
	Limits Limits
}

// TextureFormat names a pixel format. Values are backend-defined, the
// harness only compares them for equality.
type TextureFormat uint32

// UndefinedFormat is the zero TextureFormat.
const UndefinedFormat TextureFormat = 0

// PresentMode is the policy for handing produced frames to the
// display.
type PresentMode int

// Present modes.
const (
	// Immediate delivers frames as produced, tearing allowed
	Immediate PresentMode = iota

	// Mailbox replaces the queued frame without blocking the producer
	Mailbox

	// Fifo locks presentation to the display refresh, blocking the
	// producer when the queue is full
	Fifo
)

func (m PresentMode) String() string {
	switch m {
	case Immediate:
		return "Immediate"
	case Mailbox:
		return "Mailbox"
	case Fifo:
		return "Fifo"
	default:
		return "Invalid"
	}
}

// TextureUsage flags what a surface texture is used for.
type TextureUsage uint32

// RenderAttachment is the only usage the harness configures.
const RenderAttachment TextureUsage = 1 << 0

// PresentationConfiguration is the agreed contract between a surface
// and the device. It must be re-applied whenever the drawable size
// changes.
type PresentationConfiguration struct {
	Usage       TextureUsage
	Format      TextureFormat
	Width       uint32
	Height      uint32
	PresentMode PresentMode
}

// Color is an RGBA clear color.
type Color struct {
	R, G, B, A float64
}

// Black is the harness clear color.
var Black = Color{0, 0, 0, 1}

// VertexFormat names the data type of one vertex attribute.
type VertexFormat int

// Vertex attribute formats.
const (
	Float32x3 VertexFormat = iota
	Float32x4
)

// VertexAttribute is one attribute inside a vertex record.
type VertexAttribute struct {
	Format   VertexFormat
	Offset   uint64
	Location uint32
}

// StepMode states how a vertex buffer advances.
type StepMode int

// Step modes.
const (
	StepPerVertex StepMode = iota
	StepPerInstance
)

// VertexLayout is the fixed-stride vertex input contract bound at one
// input slot.
type VertexLayout struct {
	Stride     uint64
	Step       StepMode
	Attributes []VertexAttribute
}

// PipelineDescriptor declares one render pipeline: one shader unit
// with a vertex and a fragment entry point, one vertex layout at slot
// zero, one color target. Primitive assembly, depth/stencil and
// multisampling stay at their defaults.
type PipelineDescriptor struct {
	Label         string
	Shader        Shader
	VertexEntry   string
	FragmentEntry string
	Layout        VertexLayout
	TargetFormat  TextureFormat
}
