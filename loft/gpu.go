package loft

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the size in bytes of one interleaved vertex:
// position (3×f32), normal (3×f32), texcoord (2×f32), color (3×f32).
const VertexStride = 44

// Shader locations of the interleaved vertex attributes.
const (
	LocationPosition = 0
	LocationNormal   = 1
	LocationTexCoord = 2
	LocationColor    = 3
)

// VertexLayout returns the vertex buffer layout matching Interleave.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationPosition},
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: LocationNormal},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: LocationTexCoord},
			{Format: gputypes.VertexFormatFloat32x3, Offset: 32, ShaderLocation: LocationColor},
		},
	}
}

// Primitive returns the primitive state for drawing a surface: an indexed
// triangle list without culling, since lofted surfaces are open and seen
// from both sides.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// IndexFormat returns the format of the bytes produced by IndexBytes.
func IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// Interleave packs the vertices into a little-endian float32 buffer laid
// out as described by VertexLayout.
func (s *Surface) Interleave() []byte {
	buf := make([]byte, len(s.Vertices)*VertexStride)
	for i, v := range s.Vertices {
		b := buf[i*VertexStride:]
		putVec3(b[0:12], v.Position)
		putVec3(b[12:24], v.Normal)
		putFloat(b[24:28], v.TexCoord.X)
		putFloat(b[28:32], v.TexCoord.Y)
		putVec3(b[32:44], v.Color)
	}
	return buf
}

// IndexBytes packs the indices as little-endian uint32 values.
func (s *Surface) IndexBytes() []byte {
	buf := make([]byte, len(s.Indices)*4)
	for i, idx := range s.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

func putVec3(b []byte, v Vec3) {
	putFloat(b[0:4], v.X)
	putFloat(b[4:8], v.Y)
	putFloat(b[8:12], v.Z)
}

func putFloat(b []byte, f float64) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(f)))
}
