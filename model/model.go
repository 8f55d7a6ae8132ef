// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package model holds the vertex definitions and geometry generators
// used by the renderer.
package model

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/strobe/core"
)

// Vertex describes a single point of a model in space,
// with the color sampled at that point.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

const (
	// VertexStride is the packed byte size of one Vertex.
	VertexStride = 24

	// PositionOffset is the byte offset of Position inside the packed Vertex.
	PositionOffset = 0

	// ColorOffset is the byte offset of Color inside the packed Vertex.
	ColorOffset = 12
)

// Layout describes the packed Vertex to the pipeline. Position binds
// shader location 0, Color location 1.
func Layout() core.VertexLayout {
	return core.VertexLayout{
		Stride: VertexStride,
		Step:   core.StepPerVertex,
		Attributes: []core.VertexAttribute{
			{Format: core.Float32x3, Offset: PositionOffset, Location: 0},
			{Format: core.Float32x3, Offset: ColorOffset, Location: 1},
		},
	}
}

// Triangle returns the canonical triangle: a red apex at the top center,
// a green corner bottom left and a blue corner bottom right.
func Triangle() []Vertex {
	return []Vertex{
		{Position: mgl32.Vec3{0, 0.5, 0}, Color: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Color: mgl32.Vec3{0, 1, 0}},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Color: mgl32.Vec3{0, 0, 1}},
	}
}

// Triangles repeats the canonical triangle count times in place,
// producing 3*count vertices. Overlapping copies are intentional,
// the workload exists to exercise vertex throughput.
func Triangles(count int) []Vertex {
	base := Triangle()
	vertices := make([]Vertex, 0, 3*count)
	for i := 0; i < count; i++ {
		vertices = append(vertices, base...)
	}
	return vertices
}

// Pack serializes vertices into the byte layout the pipeline expects:
// tightly packed little-endian float32 triplets, position then color.
func Pack(vertices []Vertex) []byte {
	out := make([]byte, len(vertices)*VertexStride)
	offset := 0
	put := func(v mgl32.Vec3) {
		for i := 0; i < 3; i++ {
			binary.LittleEndian.PutUint32(out[offset:], math.Float32bits(v[i]))
			offset += 4
		}
	}
	for _, vertex := range vertices {
		put(vertex.Position)
		put(vertex.Color)
	}
	return out
}
