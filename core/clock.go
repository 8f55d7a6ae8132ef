// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"

	"github.com/loov/hrtime"
)

// Stage names one boundary of the per-frame protocol.
type Stage int

// Frame stage boundaries, in protocol order.
const (
	StageRedraw Stage = iota
	StageAcquired
	StageRecorded
	StageSubmitted
	StagePresented
)

func (s Stage) String() string {
	switch s {
	case StageRedraw:
		return "redraw"
	case StageAcquired:
		return "acquired"
	case StageRecorded:
		return "recorded"
	case StageSubmitted:
		return "submitted"
	case StagePresented:
		return "presented"
	default:
		return "invalid"
	}
}

// Observation is one timing sample taken at a stage boundary. It is
// diagnostic only and carries no control-flow significance.
type Observation struct {
	Stage   Stage
	Frame   uint64
	Elapsed time.Duration
}

// Observer receives timing observations. Implementations must not
// block, they run on the frame loop thread.
type Observer interface {
	Observe(Observation)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Observation)

// Observe implements interface
func (f ObserverFunc) Observe(o Observation) { f(o) }

// NewClock creates a clock anchored at the current instant
func NewClock() *Clock {
	return &Clock{start: hrtime.Now()}
}

// Clock owns the loop start instant and the presented-frame counter
// that the original harness kept in globals.
type Clock struct {
	start  time.Duration
	frames uint64
}

// Elapsed returns the time since the clock was created
func (c *Clock) Elapsed() time.Duration {
	return hrtime.Since(c.start)
}

// Frames returns the number of presented frames
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Tick counts one presented frame and returns its number
func (c *Clock) Tick() uint64 {
	c.frames++
	return c.frames
}

// FPS returns the running frames-per-second figure since the clock
// was created
func (c *Clock) FPS() float64 {
	secs := c.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(c.frames) / secs
}

// Sample builds an observation for the given stage at the current
// instant
func (c *Clock) Sample(stage Stage) Observation {
	return Observation{
		Stage:   stage,
		Frame:   c.frames,
		Elapsed: c.Elapsed(),
	}
}
