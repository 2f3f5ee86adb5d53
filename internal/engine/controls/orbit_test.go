package controls

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/folio3d/internal/engine/camera"
	"github.com/Faultbox/folio3d/internal/engine/event"
)

func newOrbit(t *testing.T) (*Orbit, *camera.Perspective) {
	t.Helper()
	cam := camera.NewPerspective(75, 1, 0.1, 1000)
	cam.Position = mgl32.Vec3{0, 0, 100}
	o := New(cam)
	o.SetViewportHeight(600)
	return o, cam
}

func TestUpdateKeepsFittedCamera(t *testing.T) {
	o, cam := newOrbit(t)
	o.Target = mgl32.Vec3{}

	o.Update()
	assert.InDelta(t, 0, cam.Position[0], 1e-3)
	assert.InDelta(t, 0, cam.Position[1], 1e-3)
	assert.InDelta(t, 100, cam.Position[2], 1e-3)
	assert.Equal(t, mgl32.Vec3{}, cam.Target())
}

func TestRotatePreservesDistance(t *testing.T) {
	o, cam := newOrbit(t)
	o.RotateLeft(0.5)
	o.RotateUp(0.3)
	require.True(t, o.Update())

	assert.InDelta(t, 100, cam.Position.Len(), 1e-3)
	assert.NotEqual(t, float32(0), cam.Position[0])
}

func TestDampingDecaysMotion(t *testing.T) {
	o, cam := newOrbit(t)
	o.EnableDamping = true
	o.RotateLeft(1)

	var prevX float32
	var steps []float32
	for i := 0; i < 200; i++ {
		o.Update()
		steps = append(steps, math32.Abs(cam.Position[0]-prevX))
		prevX = cam.Position[0]
	}

	// motion continues after the input and fades out
	assert.Greater(t, steps[1], float32(0))
	assert.Less(t, steps[199], steps[1])
	assert.Less(t, steps[199], float32(1e-2))
}

func TestDampingConverges(t *testing.T) {
	o, cam := newOrbit(t)
	o.EnableDamping = true
	o.RotateLeft(1)
	for i := 0; i < 1000; i++ {
		o.Update()
	}

	// total rotation approaches the requested angle
	theta := math32.Atan2(-cam.Position[0], cam.Position[2])
	assert.InDelta(t, 1, theta, 1e-2)
}

func TestDollyClampsDistance(t *testing.T) {
	o, cam := newOrbit(t)
	o.MinDistance = 50
	o.MaxDistance = 150

	o.DollyIn(0.1)
	o.Update()
	assert.InDelta(t, 50, cam.Position.Len(), 1e-3)

	o.DollyOut(0.1)
	o.Update()
	assert.InDelta(t, 150, cam.Position.Len(), 1e-3)
}

func TestPolarAngleClamped(t *testing.T) {
	o, cam := newOrbit(t)
	o.RotateUp(10)
	o.Update()

	assert.Greater(t, cam.Position[1], float32(99))
	assert.False(t, math32.IsNaN(cam.Position[0]))
}

func TestPanMovesTargetAndCamera(t *testing.T) {
	o, cam := newOrbit(t)
	o.Pan(100, 0)
	o.Update()

	assert.Less(t, o.Target[0], float32(0))
	assert.InDelta(t, o.Target[0], cam.Position[0], 1e-3)
	assert.InDelta(t, 100, cam.Position.Sub(o.Target).Len(), 1e-3)
}

func TestZeroRadiusIsStable(t *testing.T) {
	cam := camera.NewPerspective(75, 1, 0.1, 1000)
	o := New(cam)
	o.RotateLeft(1)
	o.Update()

	for _, v := range cam.Position {
		assert.False(t, math32.IsNaN(v))
	}
}

func TestPointerEvents(t *testing.T) {
	o, cam := newOrbit(t)
	var d event.Dispatcher
	o.Attach(&d)

	d.Dispatch(event.Event{Type: event.PointerDown, Button: event.ButtonLeft})
	d.Dispatch(event.Event{Type: event.PointerMove, DX: 60})
	d.Dispatch(event.Event{Type: event.PointerUp, Button: event.ButtonLeft})
	d.Dispatch(event.Event{Type: event.PointerMove, DX: 60})
	o.Update()

	// 60px of a 600px viewport is a tenth of a full turn
	theta := math32.Atan2(cam.Position[0], cam.Position[2])
	assert.InDelta(t, -2*math32.Pi/10, theta, 1e-3)
}

func TestWheelZooms(t *testing.T) {
	o, cam := newOrbit(t)
	var d event.Dispatcher
	o.Attach(&d)

	d.Dispatch(event.Event{Type: event.Wheel, DeltaY: 1})
	o.Update()
	assert.InDelta(t, 95, cam.Position.Len(), 1e-3)
}

func TestDisposeDetaches(t *testing.T) {
	o, _ := newOrbit(t)
	var d event.Dispatcher
	o.Attach(&d)
	require.Equal(t, 1, d.Len())

	o.Dispose()
	o.Dispose()
	assert.Equal(t, 0, d.Len())
}

func TestDisabledIgnoresInput(t *testing.T) {
	o, cam := newOrbit(t)
	o.Enabled = false
	o.HandleEvent(event.Event{Type: event.Wheel, DeltaY: 1})
	o.Update()
	assert.InDelta(t, 100, cam.Position.Len(), 1e-3)
}
