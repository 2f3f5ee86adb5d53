package geometry

import "github.com/chewxy/math32"

// Shape is a filled outline with optional holes.
// Outer is counter-clockwise; holes are clockwise.
type Shape struct {
	Outer Contour
	Holes []Contour
}

// ShapesFromContours groups contours into shapes by winding. The winding of
// the largest contour is taken as the fill direction; contours with the
// opposite winding become holes of the smallest enclosing outer contour.
func ShapesFromContours(contours []Contour) []Shape {
	if len(contours) == 0 {
		return nil
	}

	var largest float32
	fillSign := float32(1)
	for _, c := range contours {
		a := c.SignedArea()
		if math32.Abs(a) > largest {
			largest = math32.Abs(a)
			fillSign = math32.Copysign(1, a)
		}
	}

	var shapes []Shape
	var holes []Contour
	for _, c := range contours {
		if c.SignedArea()*fillSign > 0 {
			if fillSign < 0 {
				c = c.Reversed()
			}
			shapes = append(shapes, Shape{Outer: c})
		} else {
			if fillSign < 0 {
				c = c.Reversed()
			}
			holes = append(holes, c)
		}
	}

	for _, h := range holes {
		best := -1
		var bestArea float32
		for i, s := range shapes {
			if !s.Outer.Contains(h[0]) {
				continue
			}
			a := s.Outer.SignedArea()
			if best < 0 || a < bestArea {
				best, bestArea = i, a
			}
		}
		if best >= 0 {
			shapes[best].Holes = append(shapes[best].Holes, h)
		}
	}
	return shapes
}
