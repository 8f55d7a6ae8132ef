// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"
	"time"
)

func TestClockElapsedMonotonic(t *testing.T) {
	clock := NewClock()
	first := clock.Elapsed()
	time.Sleep(time.Millisecond)
	second := clock.Elapsed()
	if second <= first {
		t.Errorf("elapsed went from %v to %v", first, second)
	}
}

func TestClockTick(t *testing.T) {
	clock := NewClock()
	if clock.Frames() != 0 {
		t.Errorf("fresh clock counts %d frames", clock.Frames())
	}
	if n := clock.Tick(); n != 1 {
		t.Errorf("first tick returned %d", n)
	}
	clock.Tick()
	if clock.Frames() != 2 {
		t.Errorf("clock counts %d frames after two ticks", clock.Frames())
	}
}

func TestClockSample(t *testing.T) {
	clock := NewClock()
	clock.Tick()

	sample := clock.Sample(StageAcquired)
	if sample.Stage != StageAcquired {
		t.Errorf("sample carries stage %s", sample.Stage)
	}
	if sample.Frame != 1 {
		t.Errorf("sample carries frame %d", sample.Frame)
	}
	if sample.Elapsed < 0 {
		t.Errorf("sample elapsed %v is negative", sample.Elapsed)
	}
}

func TestClockFPS(t *testing.T) {
	clock := NewClock()
	for i := 0; i < 10; i++ {
		clock.Tick()
	}
	time.Sleep(time.Millisecond)
	if fps := clock.FPS(); fps <= 0 {
		t.Errorf("fps is %f after ticking", fps)
	}
}

func BenchmarkClockSample(b *testing.B) {
	clock := NewClock()
	for i := 0; i < b.N; i++ {
		clock.Sample(StagePresented)
	}
}
