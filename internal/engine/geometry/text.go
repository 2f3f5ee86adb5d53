package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/internal/font"
)

// ErrNoFont is returned when text geometry is requested without a font.
var ErrNoFont = errors.New("geometry: no font")

// TextOptions controls text extrusion.
type TextOptions struct {
	// Size is the em size in scene units.
	Size float32
	// Depth is the extrusion length along +Z.
	Depth float32
	// CurveSegments is the number of line segments per glyph curve.
	CurveSegments int
}

// DefaultTextOptions returns size 40, depth 5, 12 curve segments.
func DefaultTextOptions() TextOptions {
	return TextOptions{Size: 40, Depth: 5, CurveSegments: 12}
}

// TextShapes lays out content on a single baseline starting at the origin
// ('\n' starts a new line below) and returns the glyph shapes in scene units.
// Characters missing from the font fall back to '?' or are skipped.
func TextShapes(f font.Font, content string, size float32, segments int) ([]Shape, error) {
	if f == nil {
		return nil, ErrNoFont
	}
	if size <= 0 {
		return nil, fmt.Errorf("geometry: text size must be positive, got %v", size)
	}
	upem := f.UnitsPerEm()
	if upem <= 0 {
		return nil, fmt.Errorf("%w: units per em %v", font.ErrInvalid, upem)
	}

	scale := size / upem
	lineHeight := f.LineHeight() * scale
	var shapes []Shape
	var offsetX, offsetY float32

	for _, r := range content {
		if r == '\n' {
			offsetX = 0
			offsetY -= lineHeight
			continue
		}
		g, ok := f.Glyph(r)
		if !ok {
			if g, ok = f.Glyph('?'); !ok {
				continue
			}
		}
		at := func(p font.Point) mgl32.Vec2 {
			return mgl32.Vec2{p.X*scale + offsetX, p.Y*scale + offsetY}
		}

		b := NewPathBuilder(segments)
		for _, s := range g.Outline {
			switch s.Op {
			case font.OpMoveTo:
				b.MoveTo(at(s.Args[0]))
			case font.OpLineTo:
				b.LineTo(at(s.Args[0]))
			case font.OpQuadTo:
				b.QuadTo(at(s.Args[0]), at(s.Args[1]))
			case font.OpCubeTo:
				b.CubeTo(at(s.Args[0]), at(s.Args[1]), at(s.Args[2]))
			}
		}
		shapes = append(shapes, ShapesFromContours(b.Contours())...)
		offsetX += g.Advance * scale
	}
	return shapes, nil
}

// Text builds extruded text geometry.
func Text(f font.Font, content string, opts TextOptions) (*scene.Geometry, error) {
	shapes, err := TextShapes(f, content, opts.Size, opts.CurveSegments)
	if err != nil {
		return nil, err
	}
	return Extrude(shapes, opts.Depth), nil
}
