package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/scene"
)

// TorusKnotOptions describes a (p, q) torus knot tube.
type TorusKnotOptions struct {
	Radius          float32
	Tube            float32
	TubularSegments int
	RadialSegments  int
	P, Q            int
}

// DefaultTorusKnot returns radius 10, tube 3, 100x16 segments, p=2, q=3.
func DefaultTorusKnot() TorusKnotOptions {
	return TorusKnotOptions{
		Radius:          10,
		Tube:            3,
		TubularSegments: 100,
		RadialSegments:  16,
		P:               2,
		Q:               3,
	}
}

// TorusKnot sweeps a circle of radius Tube along the knot curve.
// It produces (tubular+1)*(radial+1) vertices and tubular*radial*2 triangles.
func TorusKnot(o TorusKnotOptions) *scene.Geometry {
	tubular := max(o.TubularSegments, 3)
	radial := max(o.RadialSegments, 3)
	p, q := float32(o.P), float32(o.Q)

	positions := make([]mgl32.Vec3, 0, (tubular+1)*(radial+1))
	for i := 0; i <= tubular; i++ {
		u := float32(i) / float32(tubular) * p * math32.Pi * 2

		p1 := knotPoint(u, p, q, o.Radius)
		p2 := knotPoint(u+0.01, p, q, o.Radius)

		// Frenet-like frame along the curve
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n)
		n = b.Cross(t)
		b = b.Normalize()
		n = n.Normalize()

		for j := 0; j <= radial; j++ {
			v := float32(j) / float32(radial) * math32.Pi * 2
			cx := -o.Tube * math32.Cos(v)
			cy := o.Tube * math32.Sin(v)
			positions = append(positions, p1.Add(n.Mul(cx)).Add(b.Mul(cy)))
		}
	}

	indices := make([]uint32, 0, tubular*radial*6)
	stride := uint32(radial + 1)
	for j := uint32(1); j <= uint32(tubular); j++ {
		for i := uint32(1); i <= uint32(radial); i++ {
			a := stride*(j-1) + (i - 1)
			b := stride*j + (i - 1)
			c := stride*j + i
			d := stride*(j-1) + i
			indices = append(indices, a, b, d, b, c, d)
		}
	}
	return scene.NewGeometry(scene.Triangles, positions, indices)
}

func knotPoint(u, p, q, radius float32) mgl32.Vec3 {
	cu, su := math32.Cos(u), math32.Sin(u)
	quOverP := q / p * u
	cs := math32.Cos(quOverP)
	return mgl32.Vec3{
		radius * (2 + cs) * 0.5 * cu,
		radius * (2 + cs) * su * 0.5,
		radius * math32.Sin(quOverP) * 0.5,
	}
}
