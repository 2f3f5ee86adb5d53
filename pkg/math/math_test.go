package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg  float32
		want float32
	}{
		{0, 0},
		{90, 1.5707964},
		{180, 3.1415927},
		{-45, -0.7853982},
	}
	for _, tt := range tests {
		got := DegToRad(tt.deg)
		if !approxEqual(got, tt.want, 1e-6) {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func approxEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned out-of-range value")
	}
}

func TestComposeIdentity(t *testing.T) {
	m := Compose(mgl32.Vec3{}, Euler{}, mgl32.Vec3{1, 1, 1})
	if !m.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("Compose(zero) = %v, want identity", m)
	}
}

func TestComposeOrder(t *testing.T) {
	// Scale first, then translate
	m := Compose(mgl32.Vec3{10, 0, 0}, Euler{}, mgl32.Vec3{2, 2, 2})
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, m)
	want := mgl32.Vec3{12, 2, 2}
	if !p.ApproxEqual(want) {
		t.Errorf("Compose point = %v, want %v", p, want)
	}
}

func TestEulerMatrix(t *testing.T) {
	e := Euler{Y: DegToRad(90)}
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, e.Matrix())
	want := mgl32.Vec3{0, 0, -1}
	for i := range want {
		if !approxEqual(p[i], want[i], 1e-5) {
			t.Errorf("rotated point = %v, want %v", p, want)
			break
		}
	}
}
