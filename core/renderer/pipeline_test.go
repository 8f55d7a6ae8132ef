// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/devblok/strobe/core"
	"github.com/devblok/strobe/model"
)

const testShader = `
@vertex fn vs_main() {}
@fragment fn fs_main() {}
`

func TestNewPipelineTargetsSwapchainFormat(t *testing.T) {
	surface := &fakeSurface{format: testFormat}
	device := &fakeDevice{}
	sc, err := NewSwapchain(surface, &fakeAdapter{}, device, 100, 100, core.Immediate)
	if err != nil {
		t.Fatal(err)
	}

	pipeline, err := NewPipeline(device, sc, "test", testShader, model.Layout())
	if err != nil {
		t.Fatal(err)
	}
	if pipeline.Format() != sc.Format() {
		t.Errorf("pipeline format %#x, swapchain format %#x", pipeline.Format(), sc.Format())
	}
	if len(device.shaders) != 1 || device.shaders[0] != "test" {
		t.Error("shader not loaded under the pipeline label")
	}
}

func TestNewPipelineFormatMismatch(t *testing.T) {
	surface := &fakeSurface{format: testFormat}
	device := &fakeDevice{pipelineFormat: testFormat + 1}
	sc, err := NewSwapchain(surface, &fakeAdapter{}, device, 100, 100, core.Immediate)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewPipeline(device, sc, "test", testShader, model.Layout()); !errors.Is(err, core.ErrFormatMismatch) {
		t.Fatalf("expected ErrFormatMismatch, got %v", err)
	}
}

func TestPipelineBindRefusesWrongTarget(t *testing.T) {
	surface := &fakeSurface{format: testFormat}
	device := &fakeDevice{}
	sc, err := NewSwapchain(surface, &fakeAdapter{}, device, 100, 100, core.Immediate)
	if err != nil {
		t.Fatal(err)
	}
	pipeline, err := NewPipeline(device, sc, "test", testShader, model.Layout())
	if err != nil {
		t.Fatal(err)
	}

	pass := &fakePass{}
	if err := pipeline.Bind(pass, testFormat+1); !errors.Is(err, core.ErrFormatMismatch) {
		t.Fatalf("expected ErrFormatMismatch, got %v", err)
	}
	if pass.pipeline != nil {
		t.Error("pipeline bound despite the format mismatch")
	}

	if err := pipeline.Bind(pass, testFormat); err != nil {
		t.Fatal(err)
	}
	if pass.pipeline == nil {
		t.Error("pipeline not bound on matching target")
	}
}
