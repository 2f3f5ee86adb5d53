package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/folio3d/pkg/math"
)

func unitQuad() *Geometry {
	return NewGeometry(Triangles, []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	}, []uint32{0, 1, 2, 0, 2, 3})
}

func TestAddReparents(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	child := NewGroup("child")

	a.Add(child)
	require.Equal(t, a, child.Parent())

	b.Add(child)
	assert.Equal(t, b, child.Parent())
	assert.Empty(t, a.Children())
	assert.Len(t, b.Children(), 1)
}

func TestAddIgnoresSelfAndNil(t *testing.T) {
	n := NewGroup("n")
	n.Add(n, nil)
	assert.Empty(t, n.Children())
}

func TestWorldMatrixComposesParents(t *testing.T) {
	root := NewGroup("root")
	root.Position = mgl32.Vec3{0, 80, 0}
	child := NewMesh("quad", unitQuad(), NewMaterial(Black))
	child.Position = mgl32.Vec3{10, 0, 0}
	root.Add(child)

	root.UpdateMatrixWorld()

	p := mgl32.TransformCoordinate(mgl32.Vec3{}, child.MatrixWorld())
	assert.True(t, p.ApproxEqual(mgl32.Vec3{10, 80, 0}), "got %v", p)
}

func TestComputeBoundingBoxWorldSpace(t *testing.T) {
	root := NewGroup("root")
	first := NewMesh("first", unitQuad(), NewMaterial(Black))
	second := NewMesh("second", unitQuad(), NewMaterial(Black))
	second.Position = mgl32.Vec3{0, -40, 0}
	root.Add(first, second)
	root.UpdateMatrixWorld()

	box := ComputeBoundingBox(root)
	require.False(t, box.IsEmpty())
	assert.Equal(t, mgl32.Vec3{0, -40, 0}, box.Min)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, box.Max)
}

func TestComputeBoundingBoxRotated(t *testing.T) {
	n := NewMesh("quad", unitQuad(), NewMaterial(Black))
	n.Rotation = math.Euler{Z: math.DegToRad(90)}
	n.UpdateMatrixWorld()

	box := ComputeBoundingBox(n)
	assert.InDelta(t, -1, box.Min[0], 1e-5)
	assert.InDelta(t, 0, box.Max[0], 1e-5)
	assert.InDelta(t, 1, box.Max[1], 1e-5)
}

func TestComputeBoundingBoxNoMeshes(t *testing.T) {
	g := NewGroup("empty")
	g.UpdateMatrixWorld()
	assert.True(t, ComputeBoundingBox(g).IsEmpty())
}

func TestTraverseVisibleSkipsHidden(t *testing.T) {
	s := New()
	shown := NewMesh("shown", unitQuad(), NewMaterial(Black))
	hidden := NewGroup("hidden")
	hidden.Visible = false
	hidden.Add(NewMesh("inner", unitQuad(), NewMaterial(Red)))
	s.Add(shown, hidden)

	meshes := s.Meshes()
	require.Len(t, meshes, 1)
	assert.Equal(t, "shown", meshes[0].Name)
}

func TestGeometryTranslateInvalidatesBounds(t *testing.T) {
	g := unitQuad()
	v := g.Version()
	before := g.BoundingBox()

	g.Translate(-0.5, 0, 0)

	assert.NotEqual(t, v, g.Version())
	after := g.BoundingBox()
	assert.Equal(t, before.Min[0]-0.5, after.Min[0])
	assert.Equal(t, float32(0), after.Center()[0])
}

func TestGeometryCounts(t *testing.T) {
	g := unitQuad()
	assert.Equal(t, 6, g.ElementCount())
	assert.Equal(t, 2, g.PrimitiveCount())
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, g.Vertex(2))

	lines := NewGeometry(Lines, []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}, nil)
	assert.Equal(t, 1, lines.PrimitiveCount())
	assert.Equal(t, "lines", lines.Mode.String())
}
