// Package solar simulates the orbital motion of the configured bodies.
//
// Time is a plain accumulator of scaled frame deltas. Each body orbits its
// parent on a circle and spins about its own axis; both are pure functions
// of that time, so the system can be evaluated at any instant.
package solar

import (
	gomath "math"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/pkg/math"
)

// Body is one celestial body and its current world state.
type Body struct {
	Name    string
	Kind    string
	Texture string
	Size    float32

	Parent *Body

	OrbitRadius float32 // Orbit units
	OrbitPeriod float32 // Seconds; 0 means fixed
	OrbitPhase  float32 // Radians
	TiltAngle   float32 // Radians
	TiltAxis    math.Vec3

	SpinPeriod float32
	SpinAxis   math.Vec3

	ShowOrbit  bool
	OrbitColor math.Vec3

	// Updated by System.Update.
	Position   math.Vec3
	OrbitAngle float32
	SpinAngle  float32
}

func newBody(c config.BodyConfig) *Body {
	b := &Body{
		Name:        c.Name,
		Kind:        c.Kind,
		Texture:     c.Texture,
		Size:        c.Size,
		OrbitRadius: c.OrbitRadius,
		OrbitPeriod: c.OrbitPeriod,
		OrbitPhase:  math.Radians(c.OrbitPhase),
		TiltAngle:   math.Radians(c.OrbitTilt),
		TiltAxis:    vec(c.OrbitTiltAxis, math.UnitX),
		SpinPeriod:  c.SpinPeriod,
		SpinAxis:    vec(c.SpinAxis, math.UnitY),
		ShowOrbit:   c.ShowOrbit && c.Parent != "",
		OrbitColor:  vec(c.OrbitColor, math.Vec3{X: 1, Y: 1, Z: 1}),
	}
	return b
}

// vec converts a config triple, substituting fallback for all zeros.
func vec(a [3]float32, fallback math.Vec3) math.Vec3 {
	if a == [3]float32{} {
		return fallback
	}
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// IsSun reports whether the body emits light and is drawn unlit.
func (b *Body) IsSun() bool {
	return b.Kind == config.KindSun
}

// angleAt returns 2πt/period offset by phase, or phase when period is 0.
func angleAt(t float64, period, phase float32) float32 {
	if period <= 0 {
		return phase
	}
	turns := t / float64(period)
	turns -= gomath.Floor(turns)
	return phase + float32(2*gomath.Pi*turns)
}

// OrbitOffset returns the body's offset from its parent in orbit units,
// before tilt, at orbit angle a. It lies on the circle mesh.Circle builds
// for the same radius: a=0 is +Z, a=π/2 is +X.
func OrbitOffset(radius, a float32) math.Vec3 {
	s, c := gomath.Sincos(float64(a))
	return math.Vec3{X: float32(s) * radius, Z: float32(c) * radius}
}

// Tilt returns the rotation from the orbit plane into world space.
func (b *Body) Tilt() math.Quat {
	if b.TiltAngle == 0 {
		return math.QuatIdentity()
	}
	return math.QuatFromAxisAngle(b.TiltAxis, b.TiltAngle)
}

// Model returns the body's model matrix: translate, spin, then size.
func (b *Body) Model() math.Mat4 {
	spin := math.QuatFromAxisAngle(b.SpinAxis, b.SpinAngle)
	return math.Translate(b.Position).
		Mul(spin.ToMat4()).
		Mul(math.Scale(math.Vec3{X: b.Size, Y: b.Size, Z: b.Size}))
}
