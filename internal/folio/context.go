package folio

import (
	"github.com/Faultbox/folio3d/internal/engine/camera"
	"github.com/Faultbox/folio3d/internal/engine/controls"
	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/pkg/math"
)

// SceneContext holds everything the assembled scene owns. It is only touched
// from the render thread.
type SceneContext struct {
	Scene    *scene.Scene
	Camera   *camera.Perspective
	Renderer Renderer
	Controls *controls.Orbit

	Blocks     []*scene.Node
	Decorative *scene.Node
	// Bounds is the box the camera was fitted to.
	Bounds math.Box3

	// AfterRender, if set, runs after each rendered frame.
	AfterRender func(dt float64)

	releases []func()
}

// onRelease registers fn to run when the context is released. Functions run
// in reverse registration order.
func (sc *SceneContext) onRelease(fn func()) {
	sc.releases = append(sc.releases, fn)
}

func (sc *SceneContext) release() {
	for i := len(sc.releases) - 1; i >= 0; i-- {
		sc.releases[i]()
	}
	sc.releases = nil
}
