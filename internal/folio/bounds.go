package folio

import (
	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/pkg/math"
)

// AccumulateBounds returns the world-space box enclosing every object. World
// matrices are refreshed from each object's root first. With no meshes the
// box is empty.
func AccumulateBounds(objects ...*scene.Node) math.Box3 {
	box := math.EmptyBox()
	for _, o := range objects {
		if o == nil {
			continue
		}
		root(o).UpdateMatrixWorld()
		box.ExpandByBox(scene.ComputeBoundingBox(o))
	}
	return box
}

func root(n *scene.Node) *scene.Node {
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}
