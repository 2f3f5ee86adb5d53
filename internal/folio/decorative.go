package folio

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/geometry"
	"github.com/Faultbox/folio3d/internal/engine/scene"
)

// DecorativeOptions describes the spinning knot.
type DecorativeOptions struct {
	Knot geometry.TorusKnotOptions
	// EdgeThreshold is the minimum angle in degrees between faces for an
	// edge to be outlined.
	EdgeThreshold float32
	FillColor     mgl32.Vec3
	EdgeColor     mgl32.Vec3
}

// DefaultDecorative returns a red 10/3 torus knot with black edges.
func DefaultDecorative() DecorativeOptions {
	return DecorativeOptions{
		Knot:          geometry.DefaultTorusKnot(),
		EdgeThreshold: 1,
		FillColor:     scene.Red,
		EdgeColor:     scene.Black,
	}
}

// BuildDecorative creates the default decorative object at (x, y, z).
func BuildDecorative(x, y, z float32) *scene.Node {
	return DefaultDecorative().Build(x, y, z)
}

// Build creates a group holding a filled knot and its edge outline, both
// derived from one knot geometry, positioned at (x, y, z).
func (o DecorativeOptions) Build(x, y, z float32) *scene.Node {
	knot := geometry.TorusKnot(o.Knot)
	edges := geometry.Edges(knot, o.EdgeThreshold)

	group := scene.NewGroup("decorative")
	group.Position = mgl32.Vec3{x, y, z}
	group.Add(
		scene.NewMesh("decorative:fill", knot, scene.NewMaterial(o.FillColor)),
		scene.NewMesh("decorative:edges", edges, scene.NewMaterial(o.EdgeColor)),
	)
	return group
}
