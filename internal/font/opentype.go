package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// OpenType is a TrueType/OpenType face.
type OpenType struct {
	face       *gotext.Face
	family     string
	lineHeight float32
}

var _ Font = (*OpenType)(nil)

// ParseOpenType parses a TTF, OTF or TTC file; collections use their first face.
func ParseOpenType(data []byte) (*OpenType, error) {
	faces, err := gotext.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing opentype: %w", err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: empty font collection", ErrInvalid)
	}
	face := faces[0]

	upem := float32(face.Upem())
	lineHeight := upem * 1.2
	if ext, ok := face.FontHExtents(); ok {
		if h := ext.Ascender - ext.Descender + ext.LineGap; h > 0 {
			lineHeight = h
		}
	}

	return &OpenType{
		face:       face,
		family:     face.Describe().Family,
		lineHeight: lineHeight,
	}, nil
}

// Family returns the family name from the name table.
func (o *OpenType) Family() string { return o.family }

// UnitsPerEm returns the face's em size.
func (o *OpenType) UnitsPerEm() float32 { return float32(o.face.Upem()) }

// LineHeight returns ascender - descender + line gap.
func (o *OpenType) LineHeight() float32 { return o.lineHeight }

// Glyph converts the face's outline for r.
func (o *OpenType) Glyph(r rune) (Glyph, bool) {
	gid, ok := o.face.NominalGlyph(r)
	if !ok {
		return Glyph{}, false
	}
	g := Glyph{Advance: o.face.HorizontalAdvance(gid)}

	outline, ok := o.face.GlyphData(gid).(gotext.GlyphOutline)
	if !ok {
		// bitmap or SVG glyphs still advance the pen
		return g, true
	}
	g.Outline = make([]Segment, 0, len(outline.Segments))
	for _, s := range outline.Segments {
		seg := Segment{}
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			seg.Op = OpMoveTo
		case opentype.SegmentOpLineTo:
			seg.Op = OpLineTo
		case opentype.SegmentOpQuadTo:
			seg.Op = OpQuadTo
		case opentype.SegmentOpCubeTo:
			seg.Op = OpCubeTo
		}
		for i, a := range s.Args {
			seg.Args[i] = Point{X: a.X, Y: a.Y}
		}
		g.Outline = append(g.Outline, seg)
	}
	return g, true
}
