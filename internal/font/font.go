// Package font loads glyph outlines from typeface JSON and OpenType files.
package font

import "errors"

// Op is an outline drawing command.
type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	// OpQuadTo uses Args[0] as control point and Args[1] as end point.
	OpQuadTo
	// OpCubeTo uses Args[0] and Args[1] as control points and Args[2] as end point.
	OpCubeTo
)

// Point is a position in font units, Y pointing up.
type Point struct {
	X, Y float32
}

// Segment is one outline command.
type Segment struct {
	Op   Op
	Args [3]Point
}

// Glyph is the outline and horizontal advance of one character, in font units.
type Glyph struct {
	Advance float32
	Outline []Segment
}

// Font provides glyph outlines for text geometry.
type Font interface {
	// Family returns the font family name, if known.
	Family() string
	// UnitsPerEm is the size of the em square in font units.
	UnitsPerEm() float32
	// LineHeight is the baseline-to-baseline distance in font units.
	LineHeight() float32
	// Glyph returns the glyph for r and whether the font has it.
	Glyph(r rune) (Glyph, bool)
}

var (
	// ErrUnsupportedFormat is returned for files that are neither typeface JSON nor OpenType.
	ErrUnsupportedFormat = errors.New("font: unsupported format")
	// ErrCancelled is returned by a request whose load was cancelled.
	ErrCancelled = errors.New("font: load cancelled")
	// ErrInvalid is returned when font data parses but cannot be used.
	ErrInvalid = errors.New("font: invalid font data")
)
