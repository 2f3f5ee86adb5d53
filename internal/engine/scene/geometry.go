package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/pkg/math"
)

// Mode selects how a geometry's vertices are assembled into primitives.
type Mode int

const (
	// Triangles draws every three indices as a filled triangle.
	Triangles Mode = iota
	// Lines draws every two indices as a line segment.
	Lines
)

func (m Mode) String() string {
	if m == Lines {
		return "lines"
	}
	return "triangles"
}

// Geometry holds vertex positions and optional indices in local space.
// When Indices is nil, positions are consumed in order.
type Geometry struct {
	Mode      Mode
	Positions []mgl32.Vec3
	Indices   []uint32

	version uint64
	bounds  *math.Box3
}

// NewGeometry creates an indexed geometry.
func NewGeometry(mode Mode, positions []mgl32.Vec3, indices []uint32) *Geometry {
	return &Geometry{Mode: mode, Positions: positions, Indices: indices, version: 1}
}

// Version changes every time the vertex data is modified through Geometry methods.
// Renderers use it to decide when to re-upload buffers.
func (g *Geometry) Version() uint64 {
	return g.version
}

// Invalidate marks the geometry as changed after direct edits to Positions or Indices.
func (g *Geometry) Invalidate() {
	g.version++
	g.bounds = nil
}

// ElementCount returns the number of vertices submitted per draw.
func (g *Geometry) ElementCount() int {
	if g.Indices != nil {
		return len(g.Indices)
	}
	return len(g.Positions)
}

// PrimitiveCount returns the number of triangles or lines.
func (g *Geometry) PrimitiveCount() int {
	if g.Mode == Lines {
		return g.ElementCount() / 2
	}
	return g.ElementCount() / 3
}

// Vertex returns the position referenced by element i.
func (g *Geometry) Vertex(i int) mgl32.Vec3 {
	if g.Indices != nil {
		return g.Positions[g.Indices[i]]
	}
	return g.Positions[i]
}

// BoundingBox returns the local-space bounds, computing them on first use.
func (g *Geometry) BoundingBox() math.Box3 {
	if g.bounds == nil {
		b := math.BoxFromPoints(g.Positions...)
		g.bounds = &b
	}
	return *g.bounds
}

// Translate shifts every vertex by (x, y, z).
func (g *Geometry) Translate(x, y, z float32) {
	offset := mgl32.Vec3{x, y, z}
	for i := range g.Positions {
		g.Positions[i] = g.Positions[i].Add(offset)
	}
	g.Invalidate()
}

// Material is a flat, unlit color.
type Material struct {
	Color mgl32.Vec3
	// Opacity below 1 enables blending.
	Opacity float32
}

// NewMaterial returns an opaque flat material.
func NewMaterial(color mgl32.Vec3) *Material {
	return &Material{Color: color, Opacity: 1}
}

// Common colors.
var (
	Black = mgl32.Vec3{0, 0, 0}
	White = mgl32.Vec3{1, 1, 1}
	Red   = mgl32.Vec3{1, 0, 0}
)
