package mesh

import "github.com/Faultbox/orrery/pkg/math"

// Placement accumulates a model matrix. Each call post-multiplies, so the
// transform issued last is applied to the vertices first:
//
//	p.Translate(t); p.Rotate(a, axis) // model = T * R
//
// The zero value is not usable; start from NewPlacement.
type Placement struct {
	model math.Mat4
}

// NewPlacement returns an identity placement.
func NewPlacement() Placement {
	return Placement{model: math.Identity()}
}

// Reset restores the identity transform.
func (p *Placement) Reset() {
	p.model = math.Identity()
}

// Translate appends a translation by offset.
func (p *Placement) Translate(offset math.Vec3) {
	p.model = p.model.Mul(math.Translate(offset))
}

// Rotate appends a rotation of angle radians about axis.
func (p *Placement) Rotate(angle float32, axis math.Vec3) {
	p.model = p.model.Mul(math.Rotate(angle, axis))
}

// Scale appends a per-axis scale.
func (p *Placement) Scale(factors math.Vec3) {
	p.model = p.model.Mul(math.Scale(factors))
}

// Model returns the accumulated model matrix.
func (p *Placement) Model() math.Mat4 {
	return p.model
}
