// Package folio assembles the portfolio scene: extruded text blocks stacked
// vertically, a spinning decorative knot, a camera fitted to their bounds,
// orbit controls and the render loop that drives them.
package folio

import (
	"github.com/Faultbox/folio3d/internal/engine/camera"
	"github.com/Faultbox/folio3d/internal/engine/frame"
	"github.com/Faultbox/folio3d/internal/engine/scene"
)

// FrameScheduler requests callbacks on the next display frame.
type FrameScheduler interface {
	RequestFrame(cb frame.Callback) frame.ID
	CancelFrame(id frame.ID)
}

// ResizeSource reports the drawable size and notifies listeners when it changes.
type ResizeSource interface {
	OnResize(fn func(width, height int)) (remove func())
	Size() (width, height int)
}

// Renderer draws a scene from a camera into a viewport.
type Renderer interface {
	Render(s *scene.Scene, cam *camera.Perspective)
	SetSize(width, height int)
}

// geometryReleaser is implemented by renderers holding GPU copies of geometry.
type geometryReleaser interface {
	Release(g *scene.Geometry)
}
