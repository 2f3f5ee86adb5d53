package folio

import "github.com/Faultbox/folio3d/internal/engine/frame"

// referenceFPS converts a per-second rate into the per-frame step used when
// the spin is frame locked.
const referenceFPS = 60

// SpinConfig controls how fast the decorative object rotates.
type SpinConfig struct {
	// Rate is radians per second applied to both the X and Y rotation.
	Rate float32
	// FrameLocked advances by Rate/60 each frame regardless of frame time.
	FrameLocked bool
}

// DefaultSpin is 0.6 rad/s, or 0.01 rad per frame at 60 fps.
func DefaultSpin() SpinConfig {
	return SpinConfig{Rate: 0.6}
}

// Step returns the rotation increment for a frame lasting dt seconds.
func (s SpinConfig) Step(dt float64) float32 {
	if s.FrameLocked {
		return s.Rate / referenceFPS
	}
	if dt < 0 {
		return 0
	}
	return s.Rate * float32(dt)
}

// StartRenderLoop runs one iteration per display frame: spin the decorative
// object, update the controls, render, then request the next frame. The
// returned function stops the loop; it may be called more than once and from
// inside a frame.
func StartRenderLoop(frames FrameScheduler, sc *SceneContext, spin SpinConfig) (stop func()) {
	var (
		id      frame.ID
		stopped bool
		tick    frame.Callback
	)

	tick = func(dt float64) {
		if stopped {
			return
		}
		if d := sc.Decorative; d != nil {
			step := spin.Step(dt)
			d.Rotation.X += step
			d.Rotation.Y += step
		}
		if sc.Controls != nil {
			sc.Controls.Update()
		}
		sc.Renderer.Render(sc.Scene, sc.Camera)
		if sc.AfterRender != nil {
			sc.AfterRender(dt)
		}
		if !stopped {
			id = frames.RequestFrame(tick)
		}
	}
	id = frames.RequestFrame(tick)

	return func() {
		if stopped {
			return
		}
		stopped = true
		frames.CancelFrame(id)
	}
}
