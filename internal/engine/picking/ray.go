// Package picking provides ray casting against the spheres of the scene.
package picking

import (
	gomath "math"

	"github.com/Faultbox/orrery/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// NewRay creates a ray, normalizing dir.
func NewRay(origin, dir math.Vec3) Ray {
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectSphere tests the ray against a sphere.
// Returns the distance to the nearest hit in front of the origin. If the
// ray starts inside the sphere, returns the exit distance.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, hit bool) {
	// |O + tD - C|^2 = r^2 with |D| = 1:
	// t^2 + 2b t + c = 0, b = D.(O-C), c = |O-C|^2 - r^2
	oc := r.Origin.Sub(center)
	b := r.Direction.Dot(oc)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(gomath.Sqrt(float64(disc)))

	t0, t1 := -b-sq, -b+sq
	if t1 < 0 {
		return 0, false // Sphere behind ray origin
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// Sphere is a pickable sphere.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// Nearest returns the index of the closest sphere the ray hits, or -1.
func (r Ray) Nearest(spheres []Sphere) (index int, t float32) {
	index = -1
	t = float32(gomath.MaxFloat32)
	for i, s := range spheres {
		d, ok := r.IntersectSphere(s.Center, s.Radius)
		if ok && d < t {
			index, t = i, d
		}
	}
	if index < 0 {
		return -1, 0
	}
	return index, t
}
