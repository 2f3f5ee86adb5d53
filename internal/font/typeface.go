package font

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// typefaceFile mirrors the typeface.json layout produced by facetype.js.
type typefaceFile struct {
	FamilyName         string                   `json:"familyName"`
	Resolution         float32                  `json:"resolution"`
	UnderlineThickness float32                  `json:"underlineThickness"`
	BoundingBox        typefaceBox              `json:"boundingBox"`
	Glyphs             map[string]typefaceGlyph `json:"glyphs"`
}

type typefaceBox struct {
	XMin float32 `json:"xMin"`
	XMax float32 `json:"xMax"`
	YMin float32 `json:"yMin"`
	YMax float32 `json:"yMax"`
}

type typefaceGlyph struct {
	HA   float32 `json:"ha"`
	XMin float32 `json:"x_min"`
	XMax float32 `json:"x_max"`
	O    string  `json:"o"`
}

// Typeface is a font parsed from typeface JSON.
type Typeface struct {
	family     string
	resolution float32
	lineHeight float32
	glyphs     map[rune]Glyph
}

var _ Font = (*Typeface)(nil)

// ParseTypeface parses typeface JSON data.
func ParseTypeface(data []byte) (*Typeface, error) {
	var file typefaceFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding typeface: %w", err)
	}
	if file.Resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %v", ErrInvalid, file.Resolution)
	}
	if len(file.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrInvalid)
	}

	tf := &Typeface{
		family:     file.FamilyName,
		resolution: file.Resolution,
		lineHeight: file.BoundingBox.YMax - file.BoundingBox.YMin + file.UnderlineThickness,
		glyphs:     make(map[rune]Glyph, len(file.Glyphs)),
	}
	for key, g := range file.Glyphs {
		runes := []rune(key)
		if len(runes) != 1 {
			continue
		}
		outline, err := parseOutline(g.O)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", key, err)
		}
		tf.glyphs[runes[0]] = Glyph{Advance: g.HA, Outline: outline}
	}
	return tf, nil
}

// parseOutline decodes the "o" command string. Curve commands list the end
// point before the control points.
func parseOutline(o string) ([]Segment, error) {
	fields := strings.Fields(o)
	var out []Segment

	nums := func(i, n int) ([]float32, error) {
		if i+n > len(fields) {
			return nil, fmt.Errorf("%w: truncated outline at token %d", ErrInvalid, i)
		}
		vals := make([]float32, n)
		for k := 0; k < n; k++ {
			v, err := strconv.ParseFloat(fields[i+k], 32)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrInvalid, fields[i+k])
			}
			vals[k] = float32(v)
		}
		return vals, nil
	}

	for i := 0; i < len(fields); {
		cmd := fields[i]
		i++
		switch cmd {
		case "m", "l":
			v, err := nums(i, 2)
			if err != nil {
				return nil, err
			}
			i += 2
			op := OpLineTo
			if cmd == "m" {
				op = OpMoveTo
			}
			out = append(out, Segment{Op: op, Args: [3]Point{{v[0], v[1]}}})
		case "q":
			v, err := nums(i, 4)
			if err != nil {
				return nil, err
			}
			i += 4
			out = append(out, Segment{Op: OpQuadTo, Args: [3]Point{{v[2], v[3]}, {v[0], v[1]}}})
		case "b":
			v, err := nums(i, 6)
			if err != nil {
				return nil, err
			}
			i += 6
			out = append(out, Segment{Op: OpCubeTo, Args: [3]Point{{v[2], v[3]}, {v[4], v[5]}, {v[0], v[1]}}})
		case "z":
			// contours are closed implicitly
		default:
			return nil, fmt.Errorf("%w: unknown outline command %q", ErrInvalid, cmd)
		}
	}
	return out, nil
}

// Family returns the family name.
func (t *Typeface) Family() string { return t.family }

// UnitsPerEm returns the typeface resolution.
func (t *Typeface) UnitsPerEm() float32 { return t.resolution }

// LineHeight returns the bounding-box height plus underline thickness.
func (t *Typeface) LineHeight() float32 { return t.lineHeight }

// Glyph returns the glyph for r.
func (t *Typeface) Glyph(r rune) (Glyph, bool) {
	g, ok := t.glyphs[r]
	return g, ok
}
