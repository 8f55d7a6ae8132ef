// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/strobe/core"
)

// State names the phase the driver is in. The driver only leaves the
// loop, for shutdown or reconfiguration, while Idle.
type State int

// Driver states.
const (
	Idle State = iota
	Acquiring
	Recording
	Submitting
	Presenting
	Terminated
)

// String implements Stringer
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Acquiring:
		return "Acquiring"
	case Recording:
		return "Recording"
	case Submitting:
		return "Submitting"
	case Presenting:
		return "Presenting"
	case Terminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Signal is an external event delivered to the driver between frames.
type Signal interface {
	signal()
}

// CloseSignal requests an orderly shutdown. It takes effect the next
// time the driver is Idle.
type CloseSignal struct{}

func (CloseSignal) signal() {}

// ResizeSignal reports new surface dimensions. The driver reconfigures
// the swapchain before the next acquisition.
type ResizeSignal struct {
	Width, Height uint32
}

func (ResizeSignal) signal() {}

// SignalSource delivers pending signals one at a time. Poll returns nil
// once the queue is drained; the driver then renders a frame.
type SignalSource interface {
	Poll() Signal
}

// Driver runs the per-frame cycle: drain signals, acquire, record,
// submit, present. It owns the loop's state machine and reports stage
// timings through the observer.
type Driver struct {
	device    core.Device
	swapchain *Swapchain
	pipeline  *Pipeline
	geometry  *Geometry

	clock    *core.Clock
	observer core.Observer

	state     State
	maxFrames uint64
}

// NewDriver assembles a driver over already constructed parts. A nil
// observer drops all timing samples.
func NewDriver(device core.Device, sc *Swapchain, pipeline *Pipeline, geometry *Geometry, observer core.Observer, cfg core.LoopConfiguration) *Driver {
	if observer == nil {
		observer = core.ObserverFunc(func(core.Observation) {})
	}
	return &Driver{
		device:    device,
		swapchain: sc,
		pipeline:  pipeline,
		geometry:  geometry,
		clock:     core.NewClock(),
		observer:  observer,
		state:     Idle,
		maxFrames: cfg.MaxFrames,
	}
}

// State returns the driver's current phase.
func (d *Driver) State() State {
	return d.state
}

// Frames returns the number of frames presented so far.
func (d *Driver) Frames() uint64 {
	return d.clock.Frames()
}

// Run drives the loop until a CloseSignal arrives, the configured frame
// limit is reached, or a frame fails. A frame failure is fatal: the
// driver terminates and returns the error.
func (d *Driver) Run(signals SignalSource) error {
	if d.state == Terminated {
		return errors.New("renderer: driver already terminated")
	}

	for {
		if err := d.drain(signals); err != nil {
			d.state = Terminated
			if errors.Is(err, errClosed) {
				log.Infof("shutting down after %d frames", d.clock.Frames())
				return nil
			}
			return err
		}

		if d.maxFrames > 0 && d.clock.Frames() >= d.maxFrames {
			d.state = Terminated
			log.Infof("frame limit reached after %d frames", d.clock.Frames())
			return nil
		}

		if err := d.RenderFrame(); err != nil {
			d.state = Terminated
			return err
		}
	}
}

// errClosed flows out of drain when a CloseSignal was seen. It never
// escapes Run.
var errClosed = errors.New("renderer: close requested")

func (d *Driver) drain(signals SignalSource) error {
	closing := false
	for {
		signal := signals.Poll()
		if signal == nil {
			break
		}
		switch sig := signal.(type) {
		case CloseSignal:
			closing = true
		case ResizeSignal:
			if err := d.swapchain.Resize(sig.Width, sig.Height); err != nil {
				return err
			}
		}
	}
	if closing {
		return errClosed
	}
	return nil
}

// RenderFrame runs one full frame cycle. The driver must be Idle.
func (d *Driver) RenderFrame() (err error) {
	if d.state != Idle {
		return errors.Newf("renderer: frame started while %s", d.state)
	}

	d.observe(core.StageRedraw)

	d.state = Acquiring
	token, err := d.swapchain.Acquire()
	if err != nil {
		d.state = Terminated
		return errors.Wrap(err, "renderer: frame acquisition failed")
	}
	d.observe(core.StageAcquired)

	d.state = Recording
	buffer, err := d.record(token)
	if err != nil {
		token.Discard()
		d.state = Terminated
		return err
	}
	d.observe(core.StageRecorded)

	d.state = Submitting
	d.device.Queue().Submit(buffer)
	buffer.Release()
	d.observe(core.StageSubmitted)

	d.state = Presenting
	if err := token.Present(); err != nil {
		d.state = Terminated
		return err
	}
	d.clock.Tick()
	d.observe(core.StagePresented)

	d.state = Idle
	return nil
}

func (d *Driver) record(token *FrameToken) (core.CommandBuffer, error) {
	frame, err := token.Frame()
	if err != nil {
		return nil, err
	}

	encoder, err := d.device.NewEncoder()
	if err != nil {
		return nil, err
	}

	pass, err := encoder.BeginPass(frame, core.Black)
	if err != nil {
		return nil, err
	}
	if err := d.pipeline.Bind(pass, d.swapchain.Format()); err != nil {
		// The run is over either way, but the open pass and encoder
		// still hold native objects.
		pass.End()
		if buffer, ferr := encoder.Finish(); ferr == nil {
			buffer.Release()
		}
		return nil, err
	}
	d.geometry.Bind(pass)
	pass.Draw(d.geometry.VertexCount(), 1)
	pass.End()

	return encoder.Finish()
}

func (d *Driver) observe(stage core.Stage) {
	d.observer.Observe(d.clock.Sample(stage))
}
