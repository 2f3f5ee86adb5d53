package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/pkg/math"
)

// edgePrecision quantizes positions so coincident vertices from different
// faces hash to the same key.
const edgePrecision = 1e4

type vertexKey [3]int32

type edgeKey [2]vertexKey

type edgeInfo struct {
	a, b   mgl32.Vec3
	normal mgl32.Vec3
	open   bool
}

// Edges returns a line geometry containing the edges of a triangle mesh whose
// adjacent face normals differ by more than thresholdDeg, plus every boundary
// edge used by only one face.
func Edges(g *scene.Geometry, thresholdDeg float32) *scene.Geometry {
	thresholdDot := math32.Cos(math.DegToRad(thresholdDeg))
	edges := make(map[edgeKey]*edgeInfo)
	var order []edgeKey
	var lines []mgl32.Vec3

	if g.Mode != scene.Triangles {
		return scene.NewGeometry(scene.Lines, nil, nil)
	}

	count := g.ElementCount()
	for t := 0; t+2 < count; t += 3 {
		verts := [3]mgl32.Vec3{g.Vertex(t), g.Vertex(t + 1), g.Vertex(t + 2)}
		keys := [3]vertexKey{quantize(verts[0]), quantize(verts[1]), quantize(verts[2])}
		if keys[0] == keys[1] || keys[1] == keys[2] || keys[2] == keys[0] {
			continue
		}
		normal := verts[2].Sub(verts[1]).Cross(verts[0].Sub(verts[1])).Normalize()

		for j := 0; j < 3; j++ {
			next := (j + 1) % 3
			key := edgeKey{keys[j], keys[next]}
			reverse := edgeKey{keys[next], keys[j]}

			if e, ok := edges[reverse]; ok && e.open {
				if normal.Dot(e.normal) <= thresholdDot {
					lines = append(lines, verts[j], verts[next])
				}
				e.open = false
				continue
			}
			if _, ok := edges[key]; !ok {
				edges[key] = &edgeInfo{a: verts[j], b: verts[next], normal: normal, open: true}
				order = append(order, key)
			}
		}
	}

	for _, k := range order {
		if e := edges[k]; e.open {
			lines = append(lines, e.a, e.b)
		}
	}
	return scene.NewGeometry(scene.Lines, lines, nil)
}

func quantize(v mgl32.Vec3) vertexKey {
	return vertexKey{
		int32(math32.Floor(v[0]*edgePrecision + 0.5)),
		int32(math32.Floor(v[1]*edgePrecision + 0.5)),
		int32(math32.Floor(v[2]*edgePrecision + 0.5)),
	}
}
