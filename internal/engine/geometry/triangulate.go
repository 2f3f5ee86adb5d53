package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/unixpickle/model3d/model2d"
	"go.uber.org/zap"

	"github.com/Faultbox/folio3d/internal/logger"
)

// Triangulate splits a polygon with holes into triangles. It returns the
// vertex list (outer ring followed by each hole) and counter-clockwise
// triangle indices into it. Polygons that cannot be triangulated yield no
// triangles.
func Triangulate(outer Contour, holes []Contour) (verts []mgl32.Vec2, tris []uint32) {
	verts = make([]mgl32.Vec2, 0, len(outer))
	if len(outer) < 3 || outer.SignedArea() == 0 {
		return append(verts, outer...), nil
	}

	index := make(map[model2d.Coord]uint32)
	mesh := model2d.NewMesh()
	addRing := func(ring Contour) {
		start := len(verts)
		verts = append(verts, ring...)
		for i := range ring {
			a, b := coord(ring[i]), coord(ring[(i+1)%len(ring)])
			if _, ok := index[a]; !ok {
				index[a] = uint32(start + i)
			}
			if a != b {
				mesh.Add(&model2d.Segment{a, b})
			}
		}
	}
	addRing(outer)
	for _, h := range holes {
		if len(h) >= 3 && h.SignedArea() != 0 {
			addRing(h)
		}
	}

	// model2d panics on self-intersecting or non-manifold input; a broken
	// glyph should not take the whole scene down.
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("triangulation failed", zap.Any("reason", r), zap.Int("vertices", len(verts)))
			tris = nil
		}
	}()

	lookup := func(c model2d.Coord) uint32 {
		if i, ok := index[c]; ok {
			return i
		}
		i := uint32(len(verts))
		verts = append(verts, mgl32.Vec2{float32(c.X), float32(c.Y)})
		index[c] = i
		return i
	}
	for _, t := range model2d.TriangulateMesh(mesh) {
		a, b, c := lookup(t[0]), lookup(t[1]), lookup(t[2])
		area := cross2(verts[b].Sub(verts[a]), verts[c].Sub(verts[a]))
		switch {
		case area > 0:
			tris = append(tris, a, b, c)
		case area < 0:
			tris = append(tris, a, c, b)
		}
	}
	return verts, tris
}

func coord(v mgl32.Vec2) model2d.Coord {
	return model2d.XY(float64(v[0]), float64(v[1]))
}

func cross2(u, v mgl32.Vec2) float32 {
	return u[0]*v[1] - u[1]*v[0]
}
