package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/internal/font"
)

func square(x0, y0, x1, y1 float32) Contour {
	return Contour{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func triangleAreas(verts []mgl32.Vec2, tris []uint32) (total float32, allCCW bool) {
	allCCW = true
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := verts[tris[i]], verts[tris[i+1]], verts[tris[i+2]]
		area := ((b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])) / 2
		if area <= 0 {
			allCCW = false
		}
		total += math32.Abs(area)
	}
	return total, allCCW
}

func TestTriangulateSquare(t *testing.T) {
	verts, tris := Triangulate(square(0, 0, 1, 1), nil)

	require.Len(t, tris, 6)
	assert.Len(t, verts, 4)
	area, ccw := triangleAreas(verts, tris)
	assert.InDelta(t, 1, area, 1e-6)
	assert.True(t, ccw)
}

func TestTriangulateWithHole(t *testing.T) {
	hole := square(3, 3, 7, 7).Reversed()
	verts, tris := Triangulate(square(0, 0, 10, 10), []Contour{hole})

	require.NotEmpty(t, tris)
	area, ccw := triangleAreas(verts, tris)
	assert.InDelta(t, 84, area, 1e-3)
	assert.True(t, ccw)
}

func TestTriangulateConcave(t *testing.T) {
	// L shape
	l := Contour{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	verts, tris := Triangulate(l, nil)

	require.NotEmpty(t, tris)
	assert.Zero(t, len(tris)%3)
	area, ccw := triangleAreas(verts, tris)
	assert.InDelta(t, 3, area, 1e-6)
	assert.True(t, ccw)
}

func TestTriangulateDegenerate(t *testing.T) {
	_, tris := Triangulate(Contour{{0, 0}, {1, 1}}, nil)
	assert.Empty(t, tris)
}

func TestTriangulateClockwiseOuter(t *testing.T) {
	verts, tris := Triangulate(square(0, 0, 2, 2).Reversed(), nil)

	area, ccw := triangleAreas(verts, tris)
	assert.InDelta(t, 4, area, 1e-6)
	assert.True(t, ccw)
}

func TestTriangulateSkipsDegenerateHoles(t *testing.T) {
	flat := Contour{{1, 1}, {2, 2}}
	verts, tris := Triangulate(square(0, 0, 4, 4), []Contour{flat})

	area, _ := triangleAreas(verts, tris)
	assert.InDelta(t, 16, area, 1e-6)
}

func TestPathBuilderFlattensCubic(t *testing.T) {
	b := NewPathBuilder(2)
	b.MoveTo(mgl32.Vec2{0, 0})
	b.CubeTo(mgl32.Vec2{0, 2}, mgl32.Vec2{2, 2}, mgl32.Vec2{2, 0})

	contours := b.Contours()
	require.Len(t, contours, 1)
	require.Len(t, contours[0], 3)
	// midpoint of the symmetric cubic
	assert.InDelta(t, 1, contours[0][1][0], 1e-6)
	assert.InDelta(t, 1.5, contours[0][1][1], 1e-6)
	assert.Equal(t, mgl32.Vec2{2, 0}, contours[0][2])
}

func TestPathBuilderFlattensCurves(t *testing.T) {
	b := NewPathBuilder(4)
	b.MoveTo(mgl32.Vec2{0, 0})
	b.QuadTo(mgl32.Vec2{1, 1}, mgl32.Vec2{2, 0})
	b.LineTo(mgl32.Vec2{0, 0})

	contours := b.Contours()
	require.Len(t, contours, 1)
	// start, 4 curve points; the closing point equals the start and is dropped
	assert.Len(t, contours[0], 5)
	assert.Equal(t, mgl32.Vec2{2, 0}, contours[0][4])
	assert.InDelta(t, 0.5, contours[0][2][1], 1e-6)
}

func TestPathBuilderDropsDegenerateContours(t *testing.T) {
	b := NewPathBuilder(12)
	b.MoveTo(mgl32.Vec2{0, 0})
	b.LineTo(mgl32.Vec2{1, 0})
	b.MoveTo(mgl32.Vec2{5, 5})

	assert.Empty(t, b.Contours())
}

func TestShapesFromContoursAssignsHoles(t *testing.T) {
	outerA := square(0, 0, 10, 10)
	outerB := square(20, 0, 30, 10)
	hole := square(22, 2, 28, 8).Reversed()

	shapes := ShapesFromContours([]Contour{outerA, hole, outerB})
	require.Len(t, shapes, 2)
	assert.Empty(t, shapes[0].Holes)
	require.Len(t, shapes[1].Holes, 1)
	assert.Less(t, shapes[1].Holes[0].SignedArea(), float32(0))
}

func TestShapesFromContoursClockwiseFonts(t *testing.T) {
	// TrueType outlines wind clockwise for fills
	outer := square(0, 0, 10, 10).Reversed()
	hole := square(2, 2, 8, 8)

	shapes := ShapesFromContours([]Contour{outer, hole})
	require.Len(t, shapes, 1)
	assert.Greater(t, shapes[0].Outer.SignedArea(), float32(0))
	require.Len(t, shapes[0].Holes, 1)
	assert.Less(t, shapes[0].Holes[0].SignedArea(), float32(0))
}

func TestExtrudeBox(t *testing.T) {
	g := Extrude([]Shape{{Outer: square(0, 0, 1, 1)}}, 2)

	assert.Equal(t, scene.Triangles, g.Mode)
	// two caps of 4 vertices plus 4 walls of 4 vertices
	assert.Len(t, g.Positions, 24)
	assert.Equal(t, 12, g.PrimitiveCount())

	box := g.BoundingBox()
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, box.Min)
	assert.Equal(t, mgl32.Vec3{1, 1, 2}, box.Max)
}

func TestExtrudeFrontCapFacesViewer(t *testing.T) {
	g := Extrude([]Shape{{Outer: square(0, 0, 1, 1)}}, 1)

	for i := 0; i+2 < g.ElementCount(); i += 3 {
		a, b, c := g.Vertex(i), g.Vertex(i+1), g.Vertex(i+2)
		if a[2] != 1 || b[2] != 1 || c[2] != 1 {
			continue
		}
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n[2], float32(0))
	}
}

type boxFont struct{}

func (boxFont) Family() string      { return "Box" }
func (boxFont) UnitsPerEm() float32 { return 100 }
func (boxFont) LineHeight() float32 { return 130 }

func (boxFont) Glyph(r rune) (font.Glyph, bool) {
	outline := []font.Segment{
		{Op: font.OpMoveTo, Args: [3]font.Point{{X: 10, Y: 0}}},
		{Op: font.OpLineTo, Args: [3]font.Point{{X: 90, Y: 0}}},
		{Op: font.OpLineTo, Args: [3]font.Point{{X: 90, Y: 100}}},
		{Op: font.OpLineTo, Args: [3]font.Point{{X: 10, Y: 100}}},
	}
	switch r {
	case 'H':
		return font.Glyph{Advance: 100, Outline: outline}, true
	case '?':
		return font.Glyph{Advance: 50, Outline: outline}, true
	case ' ':
		return font.Glyph{Advance: 50}, true
	}
	return font.Glyph{}, false
}

func TestTextLayout(t *testing.T) {
	g, err := Text(boxFont{}, "HH", TextOptions{Size: 50, Depth: 5, CurveSegments: 12})
	require.NoError(t, err)

	box := g.BoundingBox()
	assert.InDelta(t, 5, box.Min[0], 1e-5)
	assert.InDelta(t, 95, box.Max[0], 1e-5)
	assert.InDelta(t, 0, box.Min[1], 1e-5)
	assert.InDelta(t, 50, box.Max[1], 1e-5)
	assert.InDelta(t, 0, box.Min[2], 1e-5)
	assert.InDelta(t, 5, box.Max[2], 1e-5)
}

func TestTextSpaceAdvances(t *testing.T) {
	g, err := Text(boxFont{}, "H H", TextOptions{Size: 100, Depth: 1, CurveSegments: 1})
	require.NoError(t, err)

	assert.InDelta(t, 240, g.BoundingBox().Max[0], 1e-4)
}

func TestTextNewline(t *testing.T) {
	g, err := Text(boxFont{}, "H\nH", TextOptions{Size: 100, Depth: 1, CurveSegments: 1})
	require.NoError(t, err)

	box := g.BoundingBox()
	assert.InDelta(t, -130, box.Min[1], 1e-4)
	assert.InDelta(t, 90, box.Max[0], 1e-4)
}

func TestTextMissingGlyphFallsBack(t *testing.T) {
	g, err := Text(boxFont{}, "Hé", TextOptions{Size: 100, Depth: 1, CurveSegments: 1})
	require.NoError(t, err)

	// the fallback glyph is drawn after H
	assert.InDelta(t, 190, g.BoundingBox().Max[0], 1e-4)
}

func TestTextErrors(t *testing.T) {
	_, err := Text(nil, "x", DefaultTextOptions())
	assert.ErrorIs(t, err, ErrNoFont)

	_, err = Text(boxFont{}, "x", TextOptions{Size: 0, Depth: 1})
	assert.Error(t, err)
}

func TestTextEmpty(t *testing.T) {
	g, err := Text(boxFont{}, "", DefaultTextOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, g.ElementCount())
	assert.True(t, g.BoundingBox().IsEmpty())
}

func TestTorusKnotCounts(t *testing.T) {
	g := TorusKnot(DefaultTorusKnot())

	assert.Len(t, g.Positions, 101*17)
	assert.Len(t, g.Indices, 100*16*6)
	for _, i := range g.Indices {
		require.Less(t, int(i), len(g.Positions))
	}
}

func TestTorusKnotBounds(t *testing.T) {
	o := DefaultTorusKnot()
	box := TorusKnot(o).BoundingBox()

	// the curve stays within 1.5*radius in the XY plane and 0.5*radius in Z
	limit := 1.5*o.Radius + o.Tube
	assert.LessOrEqual(t, box.Max[0], limit+1e-3)
	assert.GreaterOrEqual(t, box.Min[0], -limit-1e-3)
	assert.LessOrEqual(t, box.Max[2], 0.5*o.Radius+o.Tube+1e-3)
	assert.Greater(t, box.MaxDimension(), o.Radius)
}

func TestEdgesOfBox(t *testing.T) {
	box := Extrude([]Shape{{Outer: square(0, 0, 1, 1)}}, 1)
	e := Edges(box, 1)

	assert.Equal(t, scene.Lines, e.Mode)
	assert.Equal(t, 12, e.PrimitiveCount())
}

func TestEdgesOpenTriangle(t *testing.T) {
	g := scene.NewGeometry(scene.Triangles, []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil)
	assert.Equal(t, 3, Edges(g, 1).PrimitiveCount())
}

func TestEdgesSkipsCoplanarDiagonal(t *testing.T) {
	quad := scene.NewGeometry(scene.Triangles,
		[]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]uint32{0, 1, 2, 0, 2, 3})

	assert.Equal(t, 4, Edges(quad, 1).PrimitiveCount())
}

func TestEdgesOfLinesIsEmpty(t *testing.T) {
	lines := scene.NewGeometry(scene.Lines, []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}, nil)
	assert.Equal(t, 0, Edges(lines, 1).ElementCount())
}
