// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestTrianglesCount(t *testing.T) {
	for _, count := range []int{1, 2, 7, 1024} {
		vertices := Triangles(count)
		if len(vertices) != 3*count {
			t.Errorf("Triangles(%d) produced %d vertices, expected %d", count, len(vertices), 3*count)
		}
	}
}

func TestTrianglesRepeatsBase(t *testing.T) {
	base := Triangle()
	vertices := Triangles(3)
	for i, vertex := range vertices {
		if vertex != base[i%3] {
			t.Fatalf("vertex %d does not match base vertex %d", i, i%3)
		}
	}
}

func TestPackLayout(t *testing.T) {
	payload := Pack(Triangle())
	if len(payload) != 3*VertexStride {
		t.Fatalf("payload is %d bytes, expected %d", len(payload), 3*VertexStride)
	}

	float := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(payload[offset:]))
	}

	// Apex position and color sit at the head of the buffer.
	if float(PositionOffset) != 0 || float(PositionOffset+4) != 0.5 {
		t.Error("apex position not packed at offset 0")
	}
	if float(ColorOffset) != 1 || float(ColorOffset+4) != 0 {
		t.Error("apex color not packed at offset 12")
	}

	// Second vertex starts exactly one stride later.
	if float(VertexStride) != -0.5 {
		t.Error("second vertex not packed at one stride")
	}
}

func TestPackSize(t *testing.T) {
	const count = 1000
	payload := Pack(Triangles(count))
	if len(payload) != 3*count*VertexStride {
		t.Errorf("payload is %d bytes, expected %d", len(payload), 3*count*VertexStride)
	}
}

func TestLayoutMatchesStride(t *testing.T) {
	layout := Layout()
	if layout.Stride != VertexStride {
		t.Errorf("layout stride is %d, expected %d", layout.Stride, VertexStride)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(layout.Attributes))
	}
	if layout.Attributes[0].Location != 0 || layout.Attributes[1].Location != 1 {
		t.Error("attribute locations not sequential from zero")
	}
	if layout.Attributes[1].Offset != ColorOffset {
		t.Errorf("color attribute offset is %d, expected %d", layout.Attributes[1].Offset, ColorOffset)
	}
}

func BenchmarkPack(b *testing.B) {
	vertices := Triangles(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Pack(vertices)
	}
}
