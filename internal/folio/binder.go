package folio

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/camera"
	"github.com/Faultbox/folio3d/internal/engine/controls"
)

// ControlsOptions configures orbit controls.
type ControlsOptions struct {
	EnableDamping bool
	DampingFactor float32
	RotateSpeed   float32
	ZoomSpeed     float32
	PanSpeed      float32
	MinDistance   float32
	// MaxDistance of 0 leaves the distance unbounded.
	MaxDistance float32
	// ViewportHeight converts pointer pixels into rotation angles.
	ViewportHeight int
}

// DefaultControlsOptions enables damping with factor 0.05.
func DefaultControlsOptions() ControlsOptions {
	return ControlsOptions{
		EnableDamping: true,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
	}
}

// BindControls attaches orbit controls for cam to surface, aims them at
// target and applies one update so the camera looks at target immediately.
func BindControls(cam *camera.Perspective, surface controls.Surface, target mgl32.Vec3, opts ControlsOptions) *controls.Orbit {
	o := controls.New(cam)
	o.EnableDamping = opts.EnableDamping
	o.DampingFactor = opts.DampingFactor
	if opts.RotateSpeed > 0 {
		o.RotateSpeed = opts.RotateSpeed
	}
	if opts.ZoomSpeed > 0 {
		o.ZoomSpeed = opts.ZoomSpeed
	}
	if opts.PanSpeed > 0 {
		o.PanSpeed = opts.PanSpeed
	}
	o.MinDistance = opts.MinDistance
	if opts.MaxDistance > 0 {
		o.MaxDistance = opts.MaxDistance
	}
	o.SetViewportHeight(opts.ViewportHeight)

	if surface != nil {
		o.Attach(surface)
	}
	o.Target = target
	o.Update()
	return o
}
