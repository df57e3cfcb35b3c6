package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M, got %v", result)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})
	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translation() = %v, want (5, 10, 15)", got)
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"translate", Translate(Vec3{10, 20, 30}), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(Vec3{2, 2, 2}), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"rotate y 90", Rotate(float32(math.Pi/2), UnitY), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"rotate x 90", Rotate(float32(math.Pi/2), UnitX), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"rotate z 90", Rotate(float32(math.Pi/2), UnitZ), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"unnormalized axis", Rotate(float32(math.Pi/2), Vec3{0, 5, 0}), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"zero axis", Rotate(1, Vec3{}), Vec3{1, 2, 3}, Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !got.ApproxEqual(tt.want, 0.001) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMulOrder(t *testing.T) {
	// T * S scales first, then translates.
	m := Translate(Vec3{10, 0, 0}).Mul(Scale(Vec3{2, 2, 2}))
	got := m.TransformPoint(Vec3{1, 0, 0})
	if !got.ApproxEqual(Vec3{12, 0, 0}, 0.0001) {
		t.Errorf("T*S applied to (1,0,0) = %v, want (12, 0, 0)", got)
	}
}

func TestWithoutTranslation(t *testing.T) {
	m := Translate(Vec3{1, 2, 3}).Mul(Rotate(0.5, UnitY))
	stripped := m.WithoutTranslation()
	if stripped.Translation() != (Vec3{}) {
		t.Errorf("translation should be removed, got %v", stripped.Translation())
	}
	if !stripped.ApproxEqual(Rotate(0.5, UnitY), 1e-6) {
		t.Error("rotation block should be preserved")
	}
}

func TestLookAt(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, UnitY)
	// The target ends up straight ahead on -Z.
	got := view.TransformPoint(Vec3{})
	if !got.ApproxEqual(Vec3{0, 0, -5}, 0.0001) {
		t.Errorf("LookAt target in view space = %v, want (0, 0, -5)", got)
	}
}

func TestPerspective(t *testing.T) {
	p := Perspective(float32(math.Pi/2), 1, 0.1, 100)
	// A point on the near plane maps to NDC depth -1.
	near := p.TransformPoint(Vec3{0, 0, -0.1})
	if abs(near.Z+1) > 0.001 {
		t.Errorf("near plane depth = %v, want -1", near.Z)
	}
	far := p.TransformPoint(Vec3{0, 0, -100})
	if abs(far.Z-1) > 0.001 {
		t.Errorf("far plane depth = %v, want 1", far.Z)
	}
}
