// Package lighting describes the sun's point light and planet materials
// and writes them to shader uniforms.
package lighting

import "github.com/Faultbox/orrery/pkg/math"

// Uniforms receives named shader values. shader.Program implements it.
type Uniforms interface {
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, f float32)
}

// PointLight is a Phong point light with distance attenuation.
type PointLight struct {
	Position math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

// SunLight returns the light emitted by a sun at pos.
// Diffuse above 1 keeps distant planets readable despite attenuation.
func SunLight(pos math.Vec3) PointLight {
	return PointLight{
		Position:  pos,
		Ambient:   math.Vec3{X: 0.25, Y: 0.25, Z: 0.25},
		Diffuse:   math.Vec3{X: 1.8, Y: 1.8, Z: 1.8},
		Specular:  math.Vec3{X: 1, Y: 1, Z: 1},
		Constant:  1.0,
		Linear:    0.045,
		Quadratic: 0.0075,
	}
}

// Attenuation returns the light's intensity factor at distance d.
func (l PointLight) Attenuation(d float32) float32 {
	denom := l.Constant + l.Linear*d + l.Quadratic*d*d
	if denom <= 0 {
		return 1
	}
	return 1 / denom
}

// Apply writes the light to the "light" uniform struct.
func (l PointLight) Apply(u Uniforms) {
	u.SetVec3("light.position", l.Position)
	u.SetVec3("light.ambient", l.Ambient)
	u.SetVec3("light.diffuse", l.Diffuse)
	u.SetVec3("light.specular", l.Specular)
	u.SetFloat("light.constant", l.Constant)
	u.SetFloat("light.linear", l.Linear)
	u.SetFloat("light.quadratic", l.Quadratic)
}

// Material holds per-surface specular settings. Diffuse colour comes
// from the body's texture.
type Material struct {
	Shininess float32
}

// DefaultMaterial is used for every planet and moon.
var DefaultMaterial = Material{Shininess: 32}

// Apply writes the material to the "material" uniform struct.
func (m Material) Apply(u Uniforms) {
	u.SetFloat("material.shininess", m.Shininess)
}
