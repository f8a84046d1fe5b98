package loft

// DefaultColor is the vertex color used when none is configured.
var DefaultColor = Vec3{X: 0.8, Y: 0.6, Z: 0.4}

// Vertex is one vertex of a lofted mesh.
type Vertex struct {
	Position Vec3
	Normal   Vec3
	TexCoord Vec2
	Color    Vec3
}

// Surface is an indexed triangle mesh. Every three indices form one
// triangle and every index is less than len(Vertices).
type Surface struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles.
func (s *Surface) TriangleCount() int {
	return len(s.Indices) / 3
}

// Empty reports whether the surface has no triangles.
func (s *Surface) Empty() bool {
	return len(s.Indices) == 0
}

// FaceNormal returns the unnormalized normal (v1-v0)×(v2-v0) of triangle i.
func (s *Surface) FaceNormal(i int) Vec3 {
	v0 := s.Vertices[s.Indices[3*i]].Position
	v1 := s.Vertices[s.Indices[3*i+1]].Position
	v2 := s.Vertices[s.Indices[3*i+2]].Position
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

// ComputeNormals sets every vertex normal to the normalized sum of the
// unnormalized normals of the faces using it. Larger faces weigh more.
// Vertices used by no face, or whose faces cancel, keep a zero normal.
func (s *Surface) ComputeNormals() {
	for i := range s.Vertices {
		s.Vertices[i].Normal = Vec3{}
	}
	for f := range s.TriangleCount() {
		n := s.FaceNormal(f)
		for _, idx := range s.Indices[3*f : 3*f+3] {
			v := &s.Vertices[idx]
			v.Normal = v.Normal.Add(n)
		}
	}
	for i := range s.Vertices {
		s.Vertices[i].Normal = s.Vertices[i].Normal.Normalize()
	}
}

// appendGrid triangulates rings of cols vertices laid out ring after ring,
// starting at vertex offset first. Each quad between ring r and ring r+1
// becomes (base, next, base+1) and (base+1, next, next+1). With wrap the
// last ring also connects back to the first.
func (s *Surface) appendGrid(first, rings, cols int, wrap bool) {
	quadRings := rings - 1
	if wrap && rings > 2 {
		quadRings = rings
	}
	for r := range quadRings {
		nr := (r + 1) % rings
		for i := range cols - 1 {
			base := uint32(first + r*cols + i)
			next := uint32(first + nr*cols + i)
			s.Indices = append(s.Indices,
				base, next, base+1,
				base+1, next, next+1,
			)
		}
	}
}
