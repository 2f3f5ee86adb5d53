package scene

import "github.com/go-gl/mathgl/mgl32"

// Scene is the root of a scene graph plus global render settings.
type Scene struct {
	*Node
	Background mgl32.Vec3
}

// New creates an empty scene with a white background.
func New() *Scene {
	return &Scene{
		Node:       NewGroup("scene"),
		Background: White,
	}
}

// Meshes returns every visible mesh node in draw order.
func (s *Scene) Meshes() []*Node {
	var out []*Node
	s.TraverseVisible(func(n *Node) {
		if n.IsMesh() {
			out = append(out, n)
		}
	})
	return out
}
