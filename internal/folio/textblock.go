package folio

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/engine/geometry"
	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/internal/font"
)

// ErrNoFont is returned when a text block is built without a font.
var ErrNoFont = geometry.ErrNoFont

// TextBlockSpec is one line of text and its em size in scene units.
type TextBlockSpec struct {
	Content string
	Size    float32
}

// TextStyle controls how text blocks are extruded and colored.
type TextStyle struct {
	Depth         float32
	CurveSegments int
	Color         mgl32.Vec3
}

// DefaultTextStyle returns the geometry defaults (depth 5, 12 curve
// segments) in black.
func DefaultTextStyle() TextStyle {
	o := geometry.DefaultTextOptions()
	return TextStyle{Depth: o.Depth, CurveSegments: o.CurveSegments, Color: scene.Black}
}

// BuildTextBlock builds a text mesh in the default style, horizontally
// centered on X=0 with its baseline at Y=0.
func BuildTextBlock(content string, size float32, f font.Font) (*scene.Node, error) {
	return DefaultTextStyle().Build(content, size, f)
}

// Build creates a text mesh centered on X=0. Vertical placement is left to
// the caller.
func (s TextStyle) Build(content string, size float32, f font.Font) (*scene.Node, error) {
	if f == nil {
		return nil, ErrNoFont
	}
	geom, err := geometry.Text(f, content, geometry.TextOptions{
		Size:          size,
		Depth:         s.Depth,
		CurveSegments: s.CurveSegments,
	})
	if err != nil {
		return nil, fmt.Errorf("building text %q: %w", content, err)
	}

	box := geom.BoundingBox()
	if !box.IsEmpty() {
		width := box.Max[0] - box.Min[0]
		geom.Translate(-(box.Min[0] + width/2), 0, 0)
	}

	return scene.NewMesh("text:"+content, geom, scene.NewMaterial(s.Color)), nil
}

// StackTextBlocks builds blocks in the default style, placing block i at
// Y = i*rowSpacing.
func StackTextBlocks(specs []TextBlockSpec, f font.Font, rowSpacing float32) ([]*scene.Node, error) {
	return DefaultTextStyle().Stack(specs, f, rowSpacing)
}

// Stack builds one block per spec in order, placing block i at Y = i*rowSpacing.
func (s TextStyle) Stack(specs []TextBlockSpec, f font.Font, rowSpacing float32) ([]*scene.Node, error) {
	blocks := make([]*scene.Node, 0, len(specs))
	for i, spec := range specs {
		n, err := s.Build(spec.Content, spec.Size, f)
		if err != nil {
			return nil, err
		}
		n.Position = mgl32.Vec3{0, float32(i) * rowSpacing, 0}
		blocks = append(blocks, n)
	}
	return blocks, nil
}
