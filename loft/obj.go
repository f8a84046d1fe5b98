package loft

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes the surface as a Wavefront OBJ mesh with positions,
// texture coordinates and normals. Face indices are 1-based and every
// face references the same index for all three attributes.
func (s *Surface) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(s.Vertices), s.TriangleCount())
	for _, v := range s.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
	}
	for _, v := range s.Vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord.X, v.TexCoord.Y)
	}
	for _, v := range s.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	for f := range s.TriangleCount() {
		a, b, c := s.Indices[3*f]+1, s.Indices[3*f+1]+1, s.Indices[3*f+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loft: write obj: %w", err)
	}
	return nil
}
