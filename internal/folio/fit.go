package folio

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/camera"
	"github.com/Faultbox/folio3d/pkg/math"
)

// FitDistance returns how far from the box center a camera with vertical
// field of view fov (degrees) must sit so the largest box dimension spans
// the view height. An empty box has distance 0.
func FitDistance(box math.Box3, fov float32) float32 {
	return box.MaxDimension() / (2 * math32.Tan(math.DegToRad(fov/2)))
}

// FitCamera moves cam onto the +Z axis through the box center at FitDistance
// and points it at the center, which it returns.
func FitCamera(box math.Box3, cam *camera.Perspective) mgl32.Vec3 {
	center := box.Center()
	distance := FitDistance(box, cam.Fov)
	cam.Position = center.Add(mgl32.Vec3{0, 0, distance})
	cam.LookAt(center)
	return center
}
