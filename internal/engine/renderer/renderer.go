// Package renderer draws scene graphs with OpenGL.
package renderer

import (
	_ "embed"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/folio3d/internal/engine/camera"
	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/internal/engine/shader"
	"github.com/Faultbox/folio3d/internal/logger"
)

//go:embed shaders/flat.vert
var flatVertexSrc string

//go:embed shaders/flat.frag
var flatFragmentSrc string

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// LineWidth applies to line geometry. Core profiles may clamp it to 1.
	LineWidth float32
}

// Stats counts the work done by the last Render call.
type Stats struct {
	DrawCalls  int
	Primitives int
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
	version       uint64
}

// Renderer draws flat-colored meshes. Buffers are uploaded on first use and
// re-uploaded when a geometry's version changes.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  map[*scene.Geometry]*gpuMesh
	stats   Stats
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.New(flatVertexSrc, flatFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r := &Renderer{
		config:  cfg,
		program: program,
		meshes:  make(map[*scene.Geometry]*gpuMesh),
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.LineWidth > 0 {
		gl.LineWidth(cfg.LineWidth)
	}
	r.SetSize(cfg.Width, cfg.Height)

	return r, nil
}

// Close releases every GPU resource owned by the renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for g := range r.meshes {
		r.Release(g)
	}
	r.program.Delete()
}

// SetSize updates the viewport.
func (r *Renderer) SetSize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Stats returns counters from the last frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Release frees the buffers uploaded for g, if any.
func (r *Renderer) Release(g *scene.Geometry) {
	m, ok := r.meshes[g]
	if !ok {
		return
	}
	deleteMesh(m)
	delete(r.meshes, g)
}

// Render clears the frame with the scene background and draws every visible
// mesh. Filled geometry is pushed back slightly so coincident lines stay visible.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) {
	r.stats = Stats{}
	bg := s.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.UpdateMatrixWorld()
	viewProj := cam.ViewProjection()

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uViewProj"), 1, false, &viewProj[0])
	modelLoc := r.program.Uniform("uModel")
	colorLoc := r.program.Uniform("uColor")

	for _, n := range s.Meshes() {
		m := r.upload(n.Geometry)
		if m.count == 0 {
			continue
		}

		model := n.MatrixWorld()
		gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])
		c := n.Material.Color
		gl.Uniform4f(colorLoc, c[0], c[1], c[2], n.Material.Opacity)

		mode := uint32(gl.TRIANGLES)
		if n.Geometry.Mode == scene.Lines {
			mode = gl.LINES
			gl.Disable(gl.POLYGON_OFFSET_FILL)
		} else {
			gl.Enable(gl.POLYGON_OFFSET_FILL)
			gl.PolygonOffset(1, 1)
		}

		gl.BindVertexArray(m.vao)
		if m.indexed {
			gl.DrawElements(mode, m.count, gl.UNSIGNED_INT, nil)
		} else {
			gl.DrawArrays(mode, 0, m.count)
		}
		r.stats.DrawCalls++
		r.stats.Primitives += n.Geometry.PrimitiveCount()
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.POLYGON_OFFSET_FILL)
}

func (r *Renderer) upload(g *scene.Geometry) *gpuMesh {
	m, ok := r.meshes[g]
	if ok && m.version == g.Version() {
		return m
	}
	if !ok {
		m = &gpuMesh{}
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(1, &m.vbo)
		r.meshes[g] = m
	}
	m.version = g.Version()
	m.count = int32(g.ElementCount())
	m.indexed = g.Indices != nil

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(g.Positions) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(g.Positions)*3*4, unsafe.Pointer(&g.Positions[0]), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	if m.indexed {
		if m.ebo == 0 {
			gl.GenBuffers(1, &m.ebo)
		}
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		if len(g.Indices) > 0 {
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)
		}
	}
	gl.BindVertexArray(0)

	logger.Debug("geometry uploaded",
		zap.Stringer("mode", g.Mode),
		zap.Int("vertices", len(g.Positions)),
		zap.Int("elements", g.ElementCount()),
	)
	return m
}

func deleteMesh(m *gpuMesh) {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// ReadPixels reads the current back buffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
