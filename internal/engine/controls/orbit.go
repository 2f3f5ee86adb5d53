// Package controls implements pointer-driven camera controls.
package controls

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/camera"
	"github.com/Faultbox/folio3d/internal/engine/event"
	"github.com/Faultbox/folio3d/pkg/math"
)

const epsilon = 1e-6

type dragState int

const (
	dragNone dragState = iota
	dragRotate
	dragDolly
	dragPan
)

// spherical holds a Y-up offset as radius, azimuth (theta, around +Y from +Z)
// and polar angle (phi, from +Y).
type spherical struct {
	radius, theta, phi float32
}

func sphericalFrom(v mgl32.Vec3) spherical {
	r := v.Len()
	if r == 0 {
		return spherical{}
	}
	return spherical{
		radius: r,
		theta:  math32.Atan2(v[0], v[2]),
		phi:    math32.Acos(math.Clamp(v[1]/r, -1, 1)),
	}
}

func (s spherical) vec() mgl32.Vec3 {
	sinPhi := math32.Sin(s.phi)
	return mgl32.Vec3{
		s.radius * sinPhi * math32.Sin(s.theta),
		s.radius * math32.Cos(s.phi),
		s.radius * sinPhi * math32.Cos(s.theta),
	}
}

// Surface delivers pointer, wheel and resize events to the controls.
type Surface = event.Source

// Orbit rotates, dollies and pans a camera around a target point. Pointer
// input accumulates deltas; Update applies them, decaying by DampingFactor
// each call when damping is enabled, so it must run once per frame.
type Orbit struct {
	Camera *camera.Perspective
	Target mgl32.Vec3

	Enabled       bool
	EnableDamping bool
	DampingFactor float32

	EnableRotate bool
	RotateSpeed  float32
	EnableZoom   bool
	ZoomSpeed    float32
	EnablePan    bool
	PanSpeed     float32

	MinDistance   float32
	MaxDistance   float32
	MinPolarAngle float32
	MaxPolarAngle float32

	delta     spherical
	scale     float32
	panOffset mgl32.Vec3

	state          dragState
	viewportHeight float32

	lastPosition mgl32.Vec3
	lastTarget   mgl32.Vec3

	unsubscribe func()
}

// New creates controls for cam with damping disabled. The camera keeps its
// current position; Target starts at the origin.
func New(cam *camera.Perspective) *Orbit {
	return &Orbit{
		Camera:         cam,
		Enabled:        true,
		DampingFactor:  0.05,
		EnableRotate:   true,
		RotateSpeed:    1,
		EnableZoom:     true,
		ZoomSpeed:      1,
		EnablePan:      true,
		PanSpeed:       1,
		MinDistance:    0,
		MaxDistance:    math32.Inf(1),
		MinPolarAngle:  0,
		MaxPolarAngle:  math32.Pi,
		scale:          1,
		viewportHeight: 1,
	}
}

// Attach subscribes the controls to src. A previous subscription is replaced.
func (o *Orbit) Attach(src Surface) {
	o.detach()
	o.unsubscribe = src.Subscribe(o.HandleEvent)
}

func (o *Orbit) detach() {
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
}

// Dispose stops listening for input. Pending motion is discarded.
func (o *Orbit) Dispose() {
	o.detach()
	o.state = dragNone
	o.delta = spherical{}
	o.panOffset = mgl32.Vec3{}
	o.scale = 1
}

// SetViewportHeight sets the pixel height used to convert pointer motion into
// angles and pan distances.
func (o *Orbit) SetViewportHeight(h int) {
	if h > 0 {
		o.viewportHeight = float32(h)
	}
}

// HandleEvent translates pointer and wheel events into pending motion.
func (o *Orbit) HandleEvent(e event.Event) {
	if !o.Enabled {
		return
	}
	switch e.Type {
	case event.PointerDown:
		o.state = o.stateFor(e)
	case event.PointerUp:
		o.state = dragNone
	case event.PointerMove:
		o.drag(e.DX, e.DY)
	case event.Wheel:
		if !o.EnableZoom {
			return
		}
		if e.DeltaY > 0 {
			o.DollyIn(o.zoomScale())
		} else if e.DeltaY < 0 {
			o.DollyOut(o.zoomScale())
		}
	case event.Resize:
		o.SetViewportHeight(e.Height)
	}
}

func (o *Orbit) stateFor(e event.Event) dragState {
	switch e.Button {
	case event.ButtonLeft:
		if e.Mods&(event.ModShift|event.ModCtrl) != 0 {
			return o.pick(o.EnablePan, dragPan)
		}
		return o.pick(o.EnableRotate, dragRotate)
	case event.ButtonMiddle:
		return o.pick(o.EnableZoom, dragDolly)
	case event.ButtonRight:
		return o.pick(o.EnablePan, dragPan)
	}
	return dragNone
}

func (o *Orbit) pick(enabled bool, s dragState) dragState {
	if enabled {
		return s
	}
	return dragNone
}

func (o *Orbit) drag(dx, dy float32) {
	switch o.state {
	case dragRotate:
		o.RotateLeft(2 * math32.Pi * dx / o.viewportHeight * o.RotateSpeed)
		o.RotateUp(2 * math32.Pi * dy / o.viewportHeight * o.RotateSpeed)
	case dragDolly:
		if dy > 0 {
			o.DollyOut(o.zoomScale())
		} else if dy < 0 {
			o.DollyIn(o.zoomScale())
		}
	case dragPan:
		o.Pan(dx*o.PanSpeed, dy*o.PanSpeed)
	}
}

func (o *Orbit) zoomScale() float32 {
	return math32.Pow(0.95, o.ZoomSpeed)
}

// RotateLeft queues an azimuth rotation in radians.
func (o *Orbit) RotateLeft(angle float32) {
	o.delta.theta -= angle
}

// RotateUp queues a polar rotation in radians.
func (o *Orbit) RotateUp(angle float32) {
	o.delta.phi -= angle
}

// DollyIn moves the camera toward the target by factor s (0 < s < 1).
func (o *Orbit) DollyIn(s float32) {
	o.scale *= s
}

// DollyOut moves the camera away from the target by factor s (0 < s < 1).
func (o *Orbit) DollyOut(s float32) {
	o.scale /= s
}

// Pan shifts camera and target in screen space by a pixel delta.
func (o *Orbit) Pan(dx, dy float32) {
	offset := o.Camera.Position.Sub(o.Target)
	targetDistance := offset.Len() * math32.Tan(math.DegToRad(o.Camera.Fov)/2)

	right, up := o.axes()
	o.panOffset = o.panOffset.
		Add(right.Mul(-2 * dx * targetDistance / o.viewportHeight)).
		Add(up.Mul(2 * dy * targetDistance / o.viewportHeight))
}

// axes returns the camera's right and up vectors in world space.
func (o *Orbit) axes() (right, up mgl32.Vec3) {
	forward := o.Target.Sub(o.Camera.Position)
	if forward.Len() < epsilon {
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	}
	forward = forward.Normalize()
	right = forward.Cross(o.Camera.Up)
	if right.Len() < epsilon {
		right = mgl32.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	return right, right.Cross(forward)
}

// Update applies pending motion to the camera and reports whether the camera
// moved.
func (o *Orbit) Update() bool {
	s := sphericalFrom(o.Camera.Position.Sub(o.Target))

	factor := float32(1)
	if o.EnableDamping {
		factor = o.DampingFactor
	}
	s.theta += o.delta.theta * factor
	s.phi += o.delta.phi * factor

	s.phi = math.Clamp(s.phi, o.MinPolarAngle, o.MaxPolarAngle)
	s.phi = math.Clamp(s.phi, epsilon, math32.Pi-epsilon)

	s.radius = math.Clamp(s.radius*o.scale, o.MinDistance, o.MaxDistance)

	o.Target = o.Target.Add(o.panOffset.Mul(factor))
	o.Camera.Position = o.Target.Add(s.vec())
	o.Camera.LookAt(o.Target)

	if o.EnableDamping {
		o.delta.theta *= 1 - o.DampingFactor
		o.delta.phi *= 1 - o.DampingFactor
		o.panOffset = o.panOffset.Mul(1 - o.DampingFactor)
	} else {
		o.delta = spherical{}
		o.panOffset = mgl32.Vec3{}
	}
	zoomed := o.scale != 1
	o.scale = 1

	moved := zoomed ||
		lenSqr(o.Camera.Position.Sub(o.lastPosition)) > epsilon ||
		lenSqr(o.Target.Sub(o.lastTarget)) > epsilon
	o.lastPosition = o.Camera.Position
	o.lastTarget = o.Target
	return moved
}

func lenSqr(v mgl32.Vec3) float32 {
	return v.Dot(v)
}
