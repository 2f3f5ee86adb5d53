// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// BoxHelperColor is the line color of bounding box overlays.
var BoxHelperColor = mgl32.Vec3{0.1, 0.4, 1}

// BBoxWireframeVertices returns line endpoints for the 12 edges of box.
// An empty box yields no vertices.
func BBoxWireframeVertices(box math.Box3) []mgl32.Vec3 {
	if box.IsEmpty() {
		return nil
	}
	lo, hi := box.Min, box.Max
	return []mgl32.Vec3{
		// Bottom face
		{lo[0], lo[1], lo[2]}, {hi[0], lo[1], lo[2]},
		{hi[0], lo[1], lo[2]}, {hi[0], lo[1], hi[2]},
		{hi[0], lo[1], hi[2]}, {lo[0], lo[1], hi[2]},
		{lo[0], lo[1], hi[2]}, {lo[0], lo[1], lo[2]},
		// Top face
		{lo[0], hi[1], lo[2]}, {hi[0], hi[1], lo[2]},
		{hi[0], hi[1], lo[2]}, {hi[0], hi[1], hi[2]},
		{hi[0], hi[1], hi[2]}, {lo[0], hi[1], hi[2]},
		{lo[0], hi[1], hi[2]}, {lo[0], hi[1], lo[2]},
		// Vertical edges
		{lo[0], lo[1], lo[2]}, {lo[0], hi[1], lo[2]},
		{hi[0], lo[1], lo[2]}, {hi[0], hi[1], lo[2]},
		{hi[0], lo[1], hi[2]}, {hi[0], hi[1], hi[2]},
		{lo[0], lo[1], hi[2]}, {lo[0], hi[1], hi[2]},
	}
}

// BoxHelper returns a line mesh outlining box, padded by padding on every side.
func BoxHelper(box math.Box3, padding float32) *scene.Node {
	if !box.IsEmpty() && padding != 0 {
		pad := mgl32.Vec3{padding, padding, padding}
		box = math.Box3{Min: box.Min.Sub(pad), Max: box.Max.Add(pad)}
	}
	geom := scene.NewGeometry(scene.Lines, BBoxWireframeVertices(box), nil)
	return scene.NewMesh("bounds", geom, scene.NewMaterial(BoxHelperColor))
}
