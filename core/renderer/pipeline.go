// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	"github.com/cockroachdb/errors"

	"github.com/devblok/strobe/core"
)

// Pipeline binds a compiled render pipeline to the swapchain format it
// targets. A pipeline only ever renders into frames of that format.
type Pipeline struct {
	pipeline core.Pipeline
	format   core.TextureFormat
}

// NewPipeline compiles the given shader source into a render pipeline
// targeting the swapchain's format.
func NewPipeline(device core.Device, sc *Swapchain, label, source string, layout core.VertexLayout) (*Pipeline, error) {
	shader, err := device.LoadShader(label, source)
	if err != nil {
		return nil, err
	}

	pipeline, err := device.CreatePipeline(core.PipelineDescriptor{
		Label:         label,
		Shader:        shader,
		VertexEntry:   core.VertexEntryPoint,
		FragmentEntry: core.FragmentEntryPoint,
		Layout:        layout,
		TargetFormat:  sc.Format(),
	})
	if err != nil {
		return nil, err
	}
	if pipeline.Format() != sc.Format() {
		return nil, errors.Wrapf(core.ErrFormatMismatch,
			"pipeline targets %#x, swapchain presents %#x", pipeline.Format(), sc.Format())
	}

	return &Pipeline{pipeline: pipeline, format: pipeline.Format()}, nil
}

// Format returns the texture format the pipeline renders into.
func (p *Pipeline) Format() core.TextureFormat {
	return p.format
}

// Bind attaches the pipeline to a pass, refusing a pass whose target
// format does not match.
func (p *Pipeline) Bind(pass core.Pass, target core.TextureFormat) error {
	if target != p.format {
		return core.ErrFormatMismatch
	}
	pass.BindPipeline(p.pipeline)
	return nil
}
