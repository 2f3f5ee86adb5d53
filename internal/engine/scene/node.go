// Package scene implements a minimal scene graph: nodes with transforms,
// optional mesh data, and world-space bounds.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/pkg/math"
)

// Node is a transform in the scene graph. A node with Geometry and Material is a mesh.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation math.Euler
	Scale    mgl32.Vec3
	Visible  bool

	Geometry *Geometry
	Material *Material

	parent      *Node
	children    []*Node
	matrixWorld mgl32.Mat4
}

// NewGroup creates an empty transform node.
func NewGroup(name string) *Node {
	return &Node{
		Name:        name,
		Scale:       mgl32.Vec3{1, 1, 1},
		Visible:     true,
		matrixWorld: mgl32.Ident4(),
	}
}

// NewMesh creates a node that draws geometry with material.
func NewMesh(name string, geom *Geometry, mat *Material) *Node {
	n := NewGroup(name)
	n.Geometry = geom
	n.Material = mat
	return n
}

// IsMesh reports whether the node carries drawable data.
func (n *Node) IsMesh() bool {
	return n.Geometry != nil && n.Material != nil
}

// Add attaches children to n, detaching them from any previous parent.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches child from n. It is a no-op if child is not a direct child.
func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// LocalMatrix returns translation * rotation * scale.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// MatrixWorld returns the world matrix computed by the last UpdateMatrixWorld.
func (n *Node) MatrixWorld() mgl32.Mat4 {
	return n.matrixWorld
}

// UpdateMatrixWorld recomputes world matrices for n and all descendants,
// starting from the parent's cached world matrix.
func (n *Node) UpdateMatrixWorld() {
	parent := mgl32.Ident4()
	if n.parent != nil {
		parent = n.parent.matrixWorld
	}
	n.updateMatrixWorld(parent)
}

func (n *Node) updateMatrixWorld(parent mgl32.Mat4) {
	n.matrixWorld = parent.Mul4(n.LocalMatrix())
	for _, c := range n.children {
		c.updateMatrixWorld(n.matrixWorld)
	}
}

// Traverse calls fn for n and every descendant, depth first.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// TraverseVisible is like Traverse but skips hidden subtrees.
func (n *Node) TraverseVisible(fn func(*Node)) {
	if !n.Visible {
		return
	}
	fn(n)
	for _, c := range n.children {
		c.TraverseVisible(fn)
	}
}

// ComputeBoundingBox returns the world-space bounds of every mesh under n:
// each geometry's local box is carried through the node's world matrix.
// World matrices must be current (see UpdateMatrixWorld).
func ComputeBoundingBox(n *Node) math.Box3 {
	box := math.EmptyBox()
	n.Traverse(func(node *Node) {
		if node.Geometry == nil {
			return
		}
		box.ExpandByBox(node.Geometry.BoundingBox().Transform(node.matrixWorld))
	})
	return box
}
