package mesh

import "testing"

func TestCube(t *testing.T) {
	m := Cube()
	if m.VertexCount() != 36 {
		t.Fatalf("VertexCount = %d, want 36", m.VertexCount())
	}
	if m.Topology != Triangles || m.IndexCount() != 0 {
		t.Errorf("want unindexed triangles, got %v with %d indices", m.Topology, m.IndexCount())
	}

	lo, hi := m.Bounds()
	if lo.X != -1 || lo.Y != -1 || lo.Z != -1 || hi.X != 1 || hi.Y != 1 || hi.Z != 1 {
		t.Errorf("Bounds = %+v %+v, want [-1,1]^3", lo, hi)
	}
}

func TestCubeFaceOrder(t *testing.T) {
	m := Cube()

	// Each run of six vertices shares one coordinate: +X, -X, +Y, -Y, +Z, -Z.
	want := []struct {
		axis int
		sign float32
	}{{0, 1}, {0, -1}, {1, 1}, {1, -1}, {2, 1}, {2, -1}}

	for f, w := range want {
		for k := 0; k < 6; k++ {
			p := m.Positions[f*6+k]
			got := [3]float32{p.X, p.Y, p.Z}[w.axis]
			if got != w.sign {
				t.Errorf("face %d vertex %d: axis %d = %v, want %v", f, k, w.axis, got, w.sign)
			}
		}
	}
}

func TestCubeTrianglesNotDegenerate(t *testing.T) {
	m := Cube()
	for tri := 0; tri < 12; tri++ {
		a, b, c := m.Positions[tri*3], m.Positions[tri*3+1], m.Positions[tri*3+2]
		if b.Sub(a).Cross(c.Sub(a)).Length() == 0 {
			t.Errorf("triangle %d is degenerate", tri)
		}
	}
}
