package loft

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestVertexLayout(t *testing.T) {
	layout := VertexLayout()
	if layout.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", layout.ArrayStride, VertexStride)
	}
	if layout.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want VertexStepModeVertex", layout.StepMode)
	}
	if len(layout.Attributes) != 4 {
		t.Fatalf("len(Attributes) = %d, want 4", len(layout.Attributes))
	}
	wantOffsets := []uint64{0, 12, 24, 32}
	for i, a := range layout.Attributes {
		if uint64(a.Offset) != wantOffsets[i] {
			t.Errorf("attribute %d offset = %d, want %d", i, a.Offset, wantOffsets[i])
		}
		if int(a.ShaderLocation) != i {
			t.Errorf("attribute %d location = %d, want %d", i, a.ShaderLocation, i)
		}
	}
	if layout.Attributes[2].Format != gputypes.VertexFormatFloat32x2 {
		t.Errorf("texcoord format = %v, want Float32x2", layout.Attributes[2].Format)
	}
}

func TestPrimitive(t *testing.T) {
	p := Primitive()
	if p.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology = %v, want TriangleList", p.Topology)
	}
	if p.CullMode != gputypes.CullModeNone {
		t.Errorf("CullMode = %v, want None", p.CullMode)
	}
	if IndexFormat() != gputypes.IndexFormatUint32 {
		t.Errorf("IndexFormat = %v, want Uint32", IndexFormat())
	}
}

func readFloat(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestInterleave(t *testing.T) {
	s := &Surface{
		Vertices: []Vertex{
			{Position: V3(1, 2, 3), Normal: V3(0, 0, 1), TexCoord: Vec2{X: 0.25, Y: 0.75}, Color: V3(0.5, 0.5, 1)},
			{Position: V3(-1, -2, -3)},
		},
		Indices: []uint32{0, 1, 0},
	}
	buf := s.Interleave()
	if len(buf) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(buf), 2*VertexStride)
	}

	want := []float32{1, 2, 3, 0, 0, 1, 0.25, 0.75, 0.5, 0.5, 1}
	for i, w := range want {
		if got := readFloat(buf, 4*i); got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
	if got := readFloat(buf, VertexStride+8); got != -3 {
		t.Errorf("second vertex z = %v, want -3", got)
	}

	idx := s.IndexBytes()
	if len(idx) != 12 {
		t.Fatalf("len(IndexBytes) = %d, want 12", len(idx))
	}
	if got := binary.LittleEndian.Uint32(idx[4:]); got != 1 {
		t.Errorf("index 1 = %d, want 1", got)
	}
}
