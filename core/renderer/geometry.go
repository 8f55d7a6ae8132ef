// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/strobe/core"
	"github.com/devblok/strobe/model"
)

// Geometry is an immutable device-resident vertex buffer together with
// the vertex count it draws with.
type Geometry struct {
	buffer      core.Buffer
	vertexCount uint32
}

// NewGeometry packs the vertices and uploads them to the device in a
// single bulk transfer. The buffer never changes after upload.
func NewGeometry(device core.Device, label string, vertices []model.Vertex) (*Geometry, error) {
	if len(vertices) == 0 {
		return nil, errors.New("renderer: geometry needs at least one vertex")
	}

	payload := model.Pack(vertices)
	buffer, err := device.CreateVertexBuffer(label, payload)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"vertices": len(vertices),
		"bytes":    len(payload),
	}).Infof("uploaded geometry %s", label)

	return &Geometry{
		buffer:      buffer,
		vertexCount: uint32(len(vertices)),
	}, nil
}

// VertexCount returns the number of vertices a draw of this geometry
// covers.
func (g *Geometry) VertexCount() uint32 {
	return g.vertexCount
}

// Bind attaches the vertex buffer to slot 0 of the pass.
func (g *Geometry) Bind(pass core.Pass) {
	pass.BindVertexBuffer(0, g.buffer)
}
