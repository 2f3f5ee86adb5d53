package math

import "github.com/go-gl/mathgl/mgl32"

// Euler holds rotation angles in radians, applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float32
}

// Matrix returns the rotation matrix Rx * Ry * Rz.
func (e Euler) Matrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(e.X).
		Mul4(mgl32.HomogRotate3DY(e.Y)).
		Mul4(mgl32.HomogRotate3DZ(e.Z))
}

// IsZero reports whether all angles are zero.
func (e Euler) IsZero() bool {
	return e.X == 0 && e.Y == 0 && e.Z == 0
}

// Compose builds a translation * rotation * scale matrix.
func Compose(position mgl32.Vec3, rotation Euler, scale mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(position[0], position[1], position[2])
	if !rotation.IsZero() {
		m = m.Mul4(rotation.Matrix())
	}
	return m.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}
