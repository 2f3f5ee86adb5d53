package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/scene"
)

// Extrude turns flat shapes into a solid: a back cap at z=0, a front cap at
// z=depth, and flat side walls along every contour. No bevel is generated.
func Extrude(shapes []Shape, depth float32) *scene.Geometry {
	var positions []mgl32.Vec3
	var indices []uint32

	for _, s := range shapes {
		verts, tris := Triangulate(s.Outer, s.Holes)
		if len(tris) == 0 {
			continue
		}

		base := uint32(len(positions))
		n := uint32(len(verts))
		for _, v := range verts {
			positions = append(positions, mgl32.Vec3{v[0], v[1], 0})
		}
		for _, v := range verts {
			positions = append(positions, mgl32.Vec3{v[0], v[1], depth})
		}
		for t := 0; t+2 < len(tris); t += 3 {
			a, b, c := tris[t], tris[t+1], tris[t+2]
			indices = append(indices,
				base+c, base+b, base+a,
				base+n+a, base+n+b, base+n+c,
			)
		}

		positions, indices = appendWalls(positions, indices, s.Outer, depth)
		for _, h := range s.Holes {
			positions, indices = appendWalls(positions, indices, h, depth)
		}
	}
	return scene.NewGeometry(scene.Triangles, positions, indices)
}

func appendWalls(positions []mgl32.Vec3, indices []uint32, ring Contour, depth float32) ([]mgl32.Vec3, []uint32) {
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		base := uint32(len(positions))
		positions = append(positions,
			mgl32.Vec3{p[0], p[1], 0},
			mgl32.Vec3{q[0], q[1], 0},
			mgl32.Vec3{q[0], q[1], depth},
			mgl32.Vec3{p[0], p[1], depth},
		)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return positions, indices
}
