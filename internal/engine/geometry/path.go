package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/unixpickle/model3d/model2d"
)

// Contour is a closed polyline. The closing edge from the last to the first
// point is implicit.
type Contour []mgl32.Vec2

// SignedArea is positive for counter-clockwise contours (Y up).
func (c Contour) SignedArea() float32 {
	var a float32
	n := len(c)
	for i := 0; i < n; i++ {
		p, q := c[i], c[(i+1)%n]
		a += p[0]*q[1] - q[0]*p[1]
	}
	return a / 2
}

// Contains reports whether p is inside the contour (even-odd rule).
func (c Contour) Contains(p mgl32.Vec2) bool {
	inside := false
	n := len(c)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := c[i], c[j]
		if (a[1] > p[1]) != (b[1] > p[1]) &&
			p[0] < (b[0]-a[0])*(p[1]-a[1])/(b[1]-a[1])+a[0] {
			inside = !inside
		}
	}
	return inside
}

// Reversed returns a copy with the opposite winding.
func (c Contour) Reversed() Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// PathBuilder flattens move/line/curve commands into contours.
type PathBuilder struct {
	// CurveSegments is the number of line segments per curve.
	CurveSegments int

	contours []Contour
	current  Contour
}

// NewPathBuilder returns a builder emitting segments line segments per curve.
func NewPathBuilder(segments int) *PathBuilder {
	if segments < 1 {
		segments = 1
	}
	return &PathBuilder{CurveSegments: segments}
}

func (b *PathBuilder) last() mgl32.Vec2 {
	if len(b.current) == 0 {
		return mgl32.Vec2{}
	}
	return b.current[len(b.current)-1]
}

func (b *PathBuilder) push(p mgl32.Vec2) {
	if len(b.current) > 0 && b.last() == p {
		return
	}
	b.current = append(b.current, p)
}

// MoveTo closes the current contour and starts a new one at p.
func (b *PathBuilder) MoveTo(p mgl32.Vec2) {
	b.Close()
	b.current = Contour{p}
}

// LineTo adds a straight edge to p.
func (b *PathBuilder) LineTo(p mgl32.Vec2) {
	b.push(p)
}

// QuadTo adds a quadratic Bézier with control point c ending at p.
func (b *PathBuilder) QuadTo(c, p mgl32.Vec2) {
	b.flatten(model2d.BezierCurve{coord(b.last()), coord(c), coord(p)}, p)
}

// CubeTo adds a cubic Bézier with control points c1, c2 ending at p.
func (b *PathBuilder) CubeTo(c1, c2, p mgl32.Vec2) {
	b.flatten(model2d.BezierCurve{coord(b.last()), coord(c1), coord(c2), coord(p)}, p)
}

// flatten samples curve at CurveSegments even steps. The end point is pushed
// as given so adjacent segments meet exactly.
func (b *PathBuilder) flatten(curve model2d.BezierCurve, end mgl32.Vec2) {
	n := b.CurveSegments
	for i := 1; i < n; i++ {
		c := curve.Eval(float64(i) / float64(n))
		b.push(mgl32.Vec2{float32(c.X), float32(c.Y)})
	}
	b.push(end)
}

// Close finishes the current contour. Contours with fewer than three
// distinct points are dropped.
func (b *PathBuilder) Close() {
	c := b.current
	b.current = nil
	if len(c) > 1 && c[0] == c[len(c)-1] {
		c = c[:len(c)-1]
	}
	if len(c) < 3 || c.SignedArea() == 0 {
		return
	}
	b.contours = append(b.contours, c)
}

// Contours closes any open contour and returns everything built so far.
func (b *PathBuilder) Contours() []Contour {
	b.Close()
	return b.contours
}
