package mesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/orrery/pkg/math"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    Mesh
		wantErr bool
	}{
		{"empty", Mesh{}, false},
		{"ok", Mesh{Positions: make([]math.Vec3, 3), Indices: []uint32{0, 1, 2}}, false},
		{"partial triangle", Mesh{Positions: make([]math.Vec3, 3), Indices: []uint32{0, 1}}, true},
		{"out of range", Mesh{Positions: make([]math.Vec3, 3), Indices: []uint32{0, 1, 3}}, true},
		{"normal mismatch", Mesh{Positions: make([]math.Vec3, 3), Normals: make([]math.Vec3, 2)}, true},
		{"texcoord mismatch", Mesh{Positions: make([]math.Vec3, 3), TexCoords: make([]math.Vec2, 4)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	m, err := Sphere(SphereParams{Precision: 4})
	if err != nil {
		t.Fatal(err)
	}
	min, max := m.Bounds()
	if !min.ApproxEqual(math.Vec3{X: -1, Y: -1, Z: -1}, 1e-5) || !max.ApproxEqual(math.Vec3{X: 1, Y: 1, Z: 1}, 1e-5) {
		t.Errorf("Bounds() = %v, %v; want unit cube", min, max)
	}
}

func TestWriteOBJSphere(t *testing.T) {
	m, err := Sphere(SphereParams{Precision: 2})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m, "planet"); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "o planet\n") {
		t.Error("missing object name")
	}
	if got := strings.Count(out, "\nv "); got != 9 {
		t.Errorf("v records = %d, want 9", got)
	}
	if got := strings.Count(out, "\nvt "); got != 9 {
		t.Errorf("vt records = %d, want 9", got)
	}
	if got := strings.Count(out, "\nf "); got != 8 {
		t.Errorf("f records = %d, want 8", got)
	}
	if !strings.Contains(out, "f 1/1/1 2/2/2 4/4/4\n") {
		t.Error("first face should reference vertices 1 2 4")
	}
}

func TestWriteOBJCircle(t *testing.T) {
	m, err := Circle(CircleParams{Radius: 1, Segments: 3})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m, ""); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	if !strings.Contains(buf.String(), "l 1 2 3 1\n") {
		t.Errorf("expected closed line record, got:\n%s", buf.String())
	}
}

func TestWriteOBJCube(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, Cube(), "cube"); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "\nv "); got != 36 {
		t.Errorf("v records = %d, want 36", got)
	}
	if got := strings.Count(out, "\nf "); got != 12 {
		t.Errorf("f records = %d, want 12", got)
	}
	if !strings.Contains(out, "\nf 1 2 3\n") || !strings.Contains(out, "\nf 34 35 36\n") {
		t.Errorf("faces should walk consecutive vertex triples:\n%s", out)
	}
}

func TestTopologyString(t *testing.T) {
	if Triangles.String() != "triangles" || LineLoop.String() != "line-loop" {
		t.Error("unexpected topology names")
	}
	if Topology(9).String() != "topology(9)" {
		t.Errorf("unknown topology = %q", Topology(9).String())
	}
}
