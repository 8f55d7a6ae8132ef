// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	"github.com/devblok/strobe/core"
)

// The fakes below implement the backend interfaces in-memory so the
// chain and loop logic can run without a GPU.

const testFormat core.TextureFormat = 24 // arbitrary non-zero format

type fakeSurface struct {
	format     core.TextureFormat
	formatErr  error
	acquireErr error

	configured []core.PresentationConfiguration
	frames     []*fakeFrame
}

func (s *fakeSurface) PreferredFormat(core.Adapter) (core.TextureFormat, error) {
	if s.formatErr != nil {
		return core.UndefinedFormat, s.formatErr
	}
	return s.format, nil
}

func (s *fakeSurface) Configure(_ core.Adapter, _ core.Device, cfg core.PresentationConfiguration) error {
	s.configured = append(s.configured, cfg)
	return nil
}

func (s *fakeSurface) Acquire() (core.Frame, error) {
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	frame := &fakeFrame{}
	s.frames = append(s.frames, frame)
	return frame, nil
}

type fakeFrame struct {
	presented bool
	discarded bool
}

func (f *fakeFrame) Present() error {
	f.presented = true
	return nil
}

func (f *fakeFrame) Discard() {
	f.discarded = true
}

type fakeAdapter struct {
	info core.AdapterInfo
}

func (a *fakeAdapter) Info() core.AdapterInfo { return a.info }

func (a *fakeAdapter) RequestDevice(core.DeviceDescriptor) (core.Device, error) {
	return &fakeDevice{}, nil
}

type fakeDevice struct {
	queue    fakeQueue
	encoders []*fakeEncoder

	// pipelineFormat, when non-zero, overrides the requested target
	// format to simulate a backend compiling for the wrong format.
	pipelineFormat core.TextureFormat

	shaders []string
	buffers []*fakeBuffer
}

func (d *fakeDevice) Queue() core.Queue { return &d.queue }

func (d *fakeDevice) LoadShader(label, source string) (core.Shader, error) {
	d.shaders = append(d.shaders, label)
	return &fakeShader{label: label}, nil
}

func (d *fakeDevice) CreateVertexBuffer(label string, contents []byte) (core.Buffer, error) {
	buffer := &fakeBuffer{label: label, contents: append([]byte(nil), contents...)}
	d.buffers = append(d.buffers, buffer)
	return buffer, nil
}

func (d *fakeDevice) CreatePipeline(desc core.PipelineDescriptor) (core.Pipeline, error) {
	format := desc.TargetFormat
	if d.pipelineFormat != core.UndefinedFormat {
		format = d.pipelineFormat
	}
	return &fakePipeline{format: format, layout: desc.Layout}, nil
}

func (d *fakeDevice) NewEncoder() (core.Encoder, error) {
	encoder := &fakeEncoder{}
	d.encoders = append(d.encoders, encoder)
	return encoder, nil
}

type fakeQueue struct {
	submitted int
}

func (q *fakeQueue) Submit(core.CommandBuffer) {
	q.submitted++
}

type fakeShader struct {
	label string
}

func (s *fakeShader) Label() string { return s.label }

type fakeBuffer struct {
	label    string
	contents []byte
}

func (b *fakeBuffer) Size() uint64 { return uint64(len(b.contents)) }

type fakePipeline struct {
	format core.TextureFormat
	layout core.VertexLayout
}

func (p *fakePipeline) Format() core.TextureFormat { return p.format }

type fakeEncoder struct {
	pass     *fakePass
	clear    core.Color
	buffer   *fakeCommandBuffer
	finished bool
}

func (e *fakeEncoder) BeginPass(frame core.Frame, clear core.Color) (core.Pass, error) {
	e.clear = clear
	e.pass = &fakePass{}
	return e.pass, nil
}

func (e *fakeEncoder) Finish() (core.CommandBuffer, error) {
	e.finished = true
	e.buffer = &fakeCommandBuffer{}
	return e.buffer, nil
}

type fakePass struct {
	pipeline     core.Pipeline
	vertexSlot   uint32
	vertexBuffer core.Buffer
	draws        [][2]uint32
	ended        bool
}

func (p *fakePass) BindPipeline(pipeline core.Pipeline) {
	p.pipeline = pipeline
}

func (p *fakePass) BindVertexBuffer(slot uint32, buffer core.Buffer) {
	p.vertexSlot = slot
	p.vertexBuffer = buffer
}

func (p *fakePass) Draw(vertexCount, instanceCount uint32) {
	p.draws = append(p.draws, [2]uint32{vertexCount, instanceCount})
}

func (p *fakePass) End() {
	p.ended = true
}

type fakeCommandBuffer struct {
	released bool
}

func (b *fakeCommandBuffer) Release() {
	b.released = true
}

// fakeSignals replays a fixed queue, then reports drained forever.
type fakeSignals struct {
	queue []Signal
}

func (s *fakeSignals) Poll() Signal {
	if len(s.queue) == 0 {
		return nil
	}
	signal := s.queue[0]
	s.queue = s.queue[1:]
	return signal
}

func (s *fakeSignals) push(signal Signal) {
	s.queue = append(s.queue, signal)
}
