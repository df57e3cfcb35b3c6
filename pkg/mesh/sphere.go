package mesh

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/orrery/pkg/math"
)

// MaxSpherePrecision is the largest precision whose (p+1)^2 vertices can
// all be addressed by uint32 indices.
const MaxSpherePrecision = 1<<16 - 1

// SphereParams configures a UV-sphere.
type SphereParams struct {
	// Precision is the number of latitude and longitude subdivisions.
	Precision int
}

// SphereVertexCount returns (p+1)^2.
func SphereVertexCount(precision int) int {
	return (precision + 1) * (precision + 1)
}

// SphereIndexCount returns 6p^2.
func SphereIndexCount(precision int) int {
	return precision * precision * 6
}

// Sphere generates a unit UV-sphere centered at the origin.
//
// Ring i runs from the south pole (i=0, y=-1) to the north pole (i=p).
// Column j sweeps longitude starting at -X. Normals equal positions.
// Pole rings are pinched, not welded.
func Sphere(params SphereParams) (*Mesh, error) {
	p := params.Precision
	if p < 1 {
		return nil, fmt.Errorf("sphere precision %d < 1: %w", p, ErrInvalidParameter)
	}
	if p > MaxSpherePrecision {
		return nil, fmt.Errorf("sphere precision %d > %d: %w", p, MaxSpherePrecision, ErrInvalidParameter)
	}

	numVertices := SphereVertexCount(p)
	m := &Mesh{
		Positions: make([]math.Vec3, numVertices),
		Normals:   make([]math.Vec3, numVertices),
		TexCoords: make([]math.Vec2, numVertices),
		Indices:   make([]uint32, SphereIndexCount(p)),
		Topology:  Triangles,
	}

	prec := float64(p)
	for i := 0; i <= p; i++ {
		y := gomath.Cos(radians(180 - float64(i)*180/prec))
		ringRadius := gomath.Abs(gomath.Cos(gomath.Asin(y)))
		for j := 0; j <= p; j++ {
			lon := radians(float64(j) * 360 / prec)
			x := -gomath.Cos(lon) * ringRadius
			z := gomath.Sin(lon) * ringRadius

			v := math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}
			idx := i*(p+1) + j
			m.Positions[idx] = v
			m.Normals[idx] = v
			m.TexCoords[idx] = math.Vec2{X: float32(j) / float32(p), Y: float32(i) / float32(p)}
		}
	}

	stride := uint32(p + 1)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			cur := uint32(i)*stride + uint32(j)
			above := cur + stride
			k := 6 * (i*p + j)
			m.Indices[k+0] = cur
			m.Indices[k+1] = cur + 1
			m.Indices[k+2] = above
			m.Indices[k+3] = cur + 1
			m.Indices[k+4] = above + 1
			m.Indices[k+5] = above
		}
	}

	return m, nil
}

func radians(degrees float64) float64 {
	return degrees * gomath.Pi / 180
}
