package mesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes the mesh as Wavefront OBJ text. Triangle meshes emit
// v/vt/vn records and faces, taken from Indices or, for unindexed meshes
// such as Cube, from consecutive vertex triples. Line loops emit a single
// closed "l" record.
func WriteOBJ(w io.Writer, m *Mesh, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d vertices, %d indices, %s\n", m.VertexCount(), m.IndexCount(), m.Topology)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, t := range m.TexCoords {
		fmt.Fprintf(bw, "vt %g %g\n", t.X, t.Y)
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}

	switch m.Topology {
	case LineLoop:
		if len(m.Positions) > 0 {
			fmt.Fprint(bw, "l")
			for i := range m.Positions {
				fmt.Fprintf(bw, " %d", i+1)
			}
			fmt.Fprint(bw, " 1\n")
		}
	default:
		hasUV := len(m.TexCoords) == len(m.Positions)
		hasN := len(m.Normals) == len(m.Positions)
		face := func(a, b, c uint32) {
			fmt.Fprintf(bw, "f %s %s %s\n",
				objRef(a+1, hasUV, hasN), objRef(b+1, hasUV, hasN), objRef(c+1, hasUV, hasN))
		}
		if len(m.Indices) == 0 {
			// Unindexed triangles use consecutive vertex triples.
			for i := uint32(0); int(i)+2 < len(m.Positions); i += 3 {
				face(i, i+1, i+2)
			}
			break
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			face(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	}

	return bw.Flush()
}

// objRef formats a 1-based face vertex reference.
func objRef(i uint32, uv, normal bool) string {
	switch {
	case uv && normal:
		return fmt.Sprintf("%d/%d/%d", i, i, i)
	case normal:
		return fmt.Sprintf("%d//%d", i, i)
	case uv:
		return fmt.Sprintf("%d/%d", i, i)
	default:
		return fmt.Sprintf("%d", i)
	}
}
