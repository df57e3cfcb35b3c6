package mesh

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/orrery/pkg/math"
)

// CircleParams configures an orbit ring.
type CircleParams struct {
	Center math.Vec3
	// Radius may be negative, which mirrors the ring through Center and
	// starts it at -X instead of +X.
	Radius   float32
	Color    math.Vec3
	Segments int
}

// Circle generates a ring of Segments vertices in the XZ plane through
// Center. Vertex k sits at angle 2πk/n measured from +X toward +Z. The
// first vertex is not repeated at the end; draw the mesh as a line loop.
func Circle(params CircleParams) (*Mesh, error) {
	n := params.Segments
	if n < 3 {
		return nil, fmt.Errorf("circle segments %d < 3: %w", n, ErrInvalidParameter)
	}

	m := &Mesh{
		Positions: make([]math.Vec3, n),
		Color:     params.Color,
		Topology:  LineLoop,
	}

	r := float64(params.Radius)
	for k := 0; k < n; k++ {
		angle := 2 * gomath.Pi * float64(k) / float64(n)
		offset := math.Vec3{
			X: float32(r * gomath.Cos(angle)),
			Z: float32(r * gomath.Sin(angle)),
		}
		m.Positions[k] = params.Center.Add(offset)
	}

	return m, nil
}

// Ring is a generated circle plus the placement it is drawn with.
// The vertex data never changes after creation; only the placement does.
type Ring struct {
	Placement
	mesh *Mesh
}

// NewRing generates a circle and wraps it with an identity placement.
func NewRing(params CircleParams) (*Ring, error) {
	m, err := Circle(params)
	if err != nil {
		return nil, err
	}
	return &Ring{Placement: NewPlacement(), mesh: m}, nil
}

// Mesh returns the ring geometry. Callers must not modify it.
func (r *Ring) Mesh() *Mesh {
	return r.mesh
}

// Color returns the ring color.
func (r *Ring) Color() math.Vec3 {
	return r.mesh.Color
}
