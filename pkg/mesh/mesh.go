// Package mesh generates the procedural geometry drawn by the viewer:
// UV-spheres for celestial bodies and circles for orbit paths.
//
// Generators are pure functions. They return owned *Mesh values that the
// GPU uploader consumes; nothing here touches OpenGL.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/orrery/pkg/math"
)

// ErrInvalidParameter is returned when a generator parameter is below its
// minimum value.
var ErrInvalidParameter = errors.New("invalid mesh parameter")

// Topology is the primitive type a mesh is meant to be drawn with.
type Topology int

const (
	Triangles Topology = iota
	LineLoop
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case LineLoop:
		return "line-loop"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// Mesh holds generated vertex data ready for GPU upload.
// Normals and TexCoords are only filled for spheres; Color only for circles.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
	Indices   []uint32
	Color     math.Vec3
	Topology  Topology
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks the structural invariants of the mesh.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(len(m.Positions))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%d normals for %d positions", len(m.Normals), len(m.Positions))
	}
	if len(m.TexCoords) != 0 && len(m.TexCoords) != len(m.Positions) {
		return fmt.Errorf("%d texcoords for %d positions", len(m.TexCoords), len(m.Positions))
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		min.X = min32(min.X, p.X)
		min.Y = min32(min.Y, p.Y)
		min.Z = min32(min.Z, p.Z)
		max.X = max32(max.X, p.X)
		max.Y = max32(max.Y, p.Y)
		max.Z = max32(max.Z, p.Z)
	}
	return min, max
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
