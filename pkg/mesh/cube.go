package mesh

import "github.com/Faultbox/orrery/pkg/math"

// cubeFaces lists the corners of each face of the unit cube in cubemap
// face order: +X, -X, +Y, -Y, +Z, -Z.
var cubeFaces = [6][4]math.Vec3{
	{{X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}},
	{{X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}},
	{{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}},
	{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}},
	{{X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}},
	{{X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}},
}

// Cube returns the 36 unindexed positions of the [-1,1] cube, two
// triangles per face. The skybox samples its cubemap with these positions.
func Cube() *Mesh {
	m := &Mesh{Positions: make([]math.Vec3, 0, 36), Topology: Triangles}
	for _, q := range cubeFaces {
		for _, i := range [6]int{0, 1, 2, 2, 3, 0} {
			m.Positions = append(m.Positions, q[i])
		}
	}
	return m
}
