// Package camera provides the perspective camera used for rendering.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/pkg/math"
)

// Perspective is a pinhole camera with a vertical field of view.
type Perspective struct {
	// Fov is the vertical field of view in degrees.
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Up       mgl32.Vec3

	target     mgl32.Vec3
	projection mgl32.Mat4
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	c := &Perspective{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl32.Vec3{0, 1, 0},
		target: mgl32.Vec3{0, 0, -1},
	}
	c.UpdateProjectionMatrix()
	return c
}

// LookAt orients the camera toward p.
func (c *Perspective) LookAt(p mgl32.Vec3) {
	c.target = p
}

// Target returns the point the camera looks at.
func (c *Perspective) Target() mgl32.Vec3 {
	return c.target
}

// UpdateProjectionMatrix recomputes the projection after Fov, Aspect, Near or
// Far change. A non-positive aspect is treated as 1.
func (c *Perspective) UpdateProjectionMatrix() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.projection = mgl32.Perspective(math.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the matrix computed by the last UpdateProjectionMatrix.
func (c *Perspective) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// ViewMatrix returns the world-to-camera transform.
func (c *Perspective) ViewMatrix() mgl32.Mat4 {
	if c.target.ApproxEqual(c.Position) {
		return mgl32.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2])
	}
	return mgl32.LookAtV(c.Position, c.target, c.Up)
}

// ViewProjection returns projection * view.
func (c *Perspective) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.ViewMatrix())
}

// Project maps a world point to normalized device coordinates. Points inside
// the view frustum land in [-1, 1] on every axis.
func (c *Perspective) Project(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, c.ViewProjection())
}

