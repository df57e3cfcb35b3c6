// Package vertex packs mesh attributes into the flat float layouts the GPU
// uploader binds. It has no OpenGL dependency.
package vertex

import (
	"errors"
	"fmt"

	"github.com/Faultbox/orrery/pkg/mesh"
)

// Stride is the number of floats per interleaved vertex:
// position (3), normal (3), texcoord (2).
const Stride = 8

// Attribute locations shared with the shaders.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2
)

// ErrLayout is returned when a mesh lacks the attributes an upload needs.
var ErrLayout = errors.New("mesh layout mismatch")

// Interleave packs positions, normals and texcoords into one float slice
// with Stride floats per vertex.
func Interleave(m *mesh.Mesh) ([]float32, error) {
	n := len(m.Positions)
	if n == 0 {
		return nil, fmt.Errorf("%w: no vertices", ErrLayout)
	}
	if len(m.Normals) != n || len(m.TexCoords) != n {
		return nil, fmt.Errorf("%w: %d positions, %d normals, %d texcoords",
			ErrLayout, n, len(m.Normals), len(m.TexCoords))
	}

	out := make([]float32, 0, n*Stride)
	for i, p := range m.Positions {
		nm, uv := m.Normals[i], m.TexCoords[i]
		out = append(out, p.X, p.Y, p.Z, nm.X, nm.Y, nm.Z, uv.X, uv.Y)
	}
	return out, nil
}

// Positions flattens positions into xyz triples.
func Positions(m *mesh.Mesh) []float32 {
	out := make([]float32, 0, len(m.Positions)*3)
	for _, p := range m.Positions {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}
