package folio

import "github.com/Faultbox/folio3d/internal/engine/camera"

// InstallResize keeps the camera aspect and renderer viewport in step with
// the window. Sizes with zero height are ignored. The returned function
// removes the listener.
func InstallResize(win ResizeSource, cam *camera.Perspective, r Renderer) (remove func()) {
	return win.OnResize(func(width, height int) {
		ApplySize(cam, r, width, height)
	})
}

// ApplySize sets the camera aspect and the renderer size for a viewport.
func ApplySize(cam *camera.Perspective, r Renderer, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	cam.Aspect = float32(width) / float32(height)
	cam.UpdateProjectionMatrix()
	r.SetSize(width, height)
}
