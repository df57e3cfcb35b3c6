package mesh

import (
	"errors"
	"testing"

	"github.com/Faultbox/orrery/pkg/math"
)

func TestSphereCounts(t *testing.T) {
	for _, p := range []int{1, 2, 3, 8, 17, 96} {
		m, err := Sphere(SphereParams{Precision: p})
		if err != nil {
			t.Fatalf("Sphere(%d): %v", p, err)
		}
		if got, want := len(m.Positions), (p+1)*(p+1); got != want {
			t.Errorf("Sphere(%d) positions = %d, want %d", p, got, want)
		}
		if got, want := len(m.Indices), 6*p*p; got != want {
			t.Errorf("Sphere(%d) indices = %d, want %d", p, got, want)
		}
		if len(m.Normals) != len(m.Positions) || len(m.TexCoords) != len(m.Positions) {
			t.Errorf("Sphere(%d) attribute lengths differ: %d normals, %d texcoords, %d positions",
				p, len(m.Normals), len(m.TexCoords), len(m.Positions))
		}
		if m.VertexCount() != SphereVertexCount(p) || m.IndexCount() != SphereIndexCount(p) {
			t.Errorf("Sphere(%d) count helpers disagree with generated mesh", p)
		}
		if m.Topology != Triangles {
			t.Errorf("Sphere(%d) topology = %v, want triangles", p, m.Topology)
		}
	}
}

func TestSphereUnitRadius(t *testing.T) {
	for _, p := range []int{1, 2, 5, 32} {
		m, err := Sphere(SphereParams{Precision: p})
		if err != nil {
			t.Fatalf("Sphere(%d): %v", p, err)
		}
		for i, pos := range m.Positions {
			if l := pos.Length(); l < 0.99999 || l > 1.00001 {
				t.Errorf("Sphere(%d) vertex %d length = %v, want 1", p, i, l)
			}
			if m.Normals[i] != pos {
				t.Errorf("Sphere(%d) vertex %d normal %v != position %v", p, i, m.Normals[i], pos)
			}
		}
	}
}

func TestSphereIndicesInRange(t *testing.T) {
	for _, p := range []int{1, 2, 7, 40} {
		m, err := Sphere(SphereParams{Precision: p})
		if err != nil {
			t.Fatalf("Sphere(%d): %v", p, err)
		}
		if err := m.Validate(); err != nil {
			t.Errorf("Sphere(%d) invalid: %v", p, err)
		}
		for i, idx := range m.Indices {
			if int(idx) >= len(m.Positions) {
				t.Fatalf("Sphere(%d) index[%d] = %d out of range", p, i, idx)
			}
		}
	}
}

func TestSpherePrecisionTwo(t *testing.T) {
	m, err := Sphere(SphereParams{Precision: 2})
	if err != nil {
		t.Fatalf("Sphere(2): %v", err)
	}
	if len(m.Positions) != 9 || len(m.Indices) != 24 {
		t.Fatalf("Sphere(2) = %d positions, %d indices; want 9, 24", len(m.Positions), len(m.Indices))
	}

	want := []uint32{
		0, 1, 3, 1, 4, 3, // i=0 j=0
		1, 2, 4, 2, 5, 4, // i=0 j=1
		3, 4, 6, 4, 7, 6, // i=1 j=0
		4, 5, 7, 5, 8, 7, // i=1 j=1
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Fatalf("Sphere(2) indices = %v, want %v", m.Indices, want)
		}
	}

	// South pole first, equator in the middle ring, north pole last.
	eps := float32(1e-5)
	if !m.Positions[0].ApproxEqual(math.Vec3{Y: -1}, eps) {
		t.Errorf("vertex 0 = %v, want south pole", m.Positions[0])
	}
	if !m.Positions[3].ApproxEqual(math.Vec3{X: -1}, eps) {
		t.Errorf("vertex 3 = %v, want (-1, 0, 0)", m.Positions[3])
	}
	if !m.Positions[4].ApproxEqual(math.Vec3{X: 1}, eps) {
		t.Errorf("vertex 4 = %v, want (1, 0, 0)", m.Positions[4])
	}
	if !m.Positions[8].ApproxEqual(math.Vec3{Y: 1}, eps) {
		t.Errorf("vertex 8 = %v, want north pole", m.Positions[8])
	}
}

func TestSphereTexCoords(t *testing.T) {
	p := 4
	m, err := Sphere(SphereParams{Precision: p})
	if err != nil {
		t.Fatalf("Sphere(%d): %v", p, err)
	}
	for i := 0; i <= p; i++ {
		for j := 0; j <= p; j++ {
			got := m.TexCoords[i*(p+1)+j]
			want := math.Vec2{X: float32(j) / float32(p), Y: float32(i) / float32(p)}
			if got != want {
				t.Errorf("texcoord(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestSphereWinding(t *testing.T) {
	// Triangles away from the pinched poles face outward.
	p := 8
	m, err := Sphere(SphereParams{Precision: p})
	if err != nil {
		t.Fatalf("Sphere(%d): %v", p, err)
	}
	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Positions[m.Indices[tri*3]]
		b := m.Positions[m.Indices[tri*3+1]]
		c := m.Positions[m.Indices[tri*3+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Length() < 1e-6 {
			continue // degenerate pole triangle
		}
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if n.Dot(centroid) <= 0 {
			t.Fatalf("triangle %d winds inward (normal %v, centroid %v)", tri, n, centroid)
		}
	}
}

func TestSphereDeterministic(t *testing.T) {
	a, err := Sphere(SphereParams{Precision: 13})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sphere(SphereParams{Precision: 13})
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] || a.TexCoords[i] != b.TexCoords[i] {
			t.Fatalf("vertex %d differs between runs", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs between runs", i)
		}
	}
}

func TestSphereInvalidPrecision(t *testing.T) {
	for _, p := range []int{0, -1, -96, MaxSpherePrecision + 1, 1 << 20} {
		m, err := Sphere(SphereParams{Precision: p})
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Sphere(%d) error = %v, want ErrInvalidParameter", p, err)
		}
		if m != nil {
			t.Errorf("Sphere(%d) returned a mesh on failure", p)
		}
	}
}
