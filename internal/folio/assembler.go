package folio

import (
	"context"
	"errors"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/folio3d/internal/engine/camera"
	"github.com/Faultbox/folio3d/internal/engine/controls"
	"github.com/Faultbox/folio3d/internal/engine/debug"
	"github.com/Faultbox/folio3d/internal/engine/frame"
	"github.com/Faultbox/folio3d/internal/engine/scene"
	"github.com/Faultbox/folio3d/internal/font"
	"github.com/Faultbox/folio3d/internal/logger"
)

// State is the assembler lifecycle.
type State int

const (
	// StateLoading waits for the font. A failed load stays here.
	StateLoading State = iota
	// StateReady has a fully assembled scene and a running render loop.
	StateReady
	// StateDisposed has released everything.
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateDisposed:
		return "disposed"
	}
	return "unknown"
}

var (
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("folio: assembler already started")
	// ErrMissingDependency is returned when Deps lacks a required collaborator.
	ErrMissingDependency = errors.New("folio: missing dependency")
)

// Host is the window side of the application: frame scheduling, resize
// notifications, pointer input and a main-thread queue.
type Host interface {
	FrameScheduler
	ResizeSource
	controls.Surface
	// Post runs fn on the render thread. It must be safe from any goroutine.
	Post(fn func())
}

// FontLoader starts asynchronous font loads.
type FontLoader interface {
	Load(ctx context.Context, path string, onProgress font.ProgressFunc) *font.Request
}

// Options is the scene description.
type Options struct {
	FontPath   string
	Texts      []TextBlockSpec
	RowSpacing float32
	TextStyle  TextStyle

	Decorative         DecorativeOptions
	DecorativePosition mgl32.Vec3
	Spin               SpinConfig

	Fov, Near, Far float32
	Background     mgl32.Vec3
	Controls       ControlsOptions

	// ShowBounds adds an outline of the fitted bounding box.
	ShowBounds bool
}

// DefaultOptions returns the stock portfolio scene.
func DefaultOptions() Options {
	return Options{
		Texts: []TextBlockSpec{
			{Content: "Hey! I'm Manuel.", Size: 40},
			{Content: "My projects", Size: 40},
		},
		RowSpacing:         -40,
		TextStyle:          DefaultTextStyle(),
		Decorative:         DefaultDecorative(),
		DecorativePosition: mgl32.Vec3{0, -120, 0},
		Spin:               DefaultSpin(),
		Fov:                75,
		Near:               0.1,
		Far:                2000,
		Background:         scene.White,
		Controls:           DefaultControlsOptions(),
	}
}

// Deps are the collaborators the assembler drives.
type Deps struct {
	Host     Host
	Renderer Renderer
	Fonts    FontLoader
	// OnReady, if set, runs on the render thread right after assembly.
	OnReady func(sc *SceneContext)
}

// Dispose releases everything acquired by Start. It is idempotent.
type Dispose func()

// Assembler builds the scene once the font is available.
type Assembler struct {
	opts Options
	deps Deps
	log  *zap.Logger

	mu      sync.Mutex
	state   State
	started bool

	sc         *SceneContext
	req        *font.Request
	cancel     context.CancelFunc
	blankFrame frame.ID
	once       sync.Once
}

// NewAssembler creates an assembler in the Loading state.
func NewAssembler(opts Options, deps Deps) *Assembler {
	return &Assembler{
		opts: opts,
		deps: deps,
		log:  logger.Named("assembler"),
	}
}

// State returns the current lifecycle state.
func (a *Assembler) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Context returns the scene context. The scene is empty until Ready.
func (a *Assembler) Context() *SceneContext {
	return a.sc
}

// Start creates the camera and empty scene, draws one blank frame and starts
// loading the font. When the font arrives the scene is assembled on the render
// thread. Cancelling ctx aborts a pending font load.
func (a *Assembler) Start(ctx context.Context) (Dispose, error) {
	if a.deps.Host == nil || a.deps.Renderer == nil || a.deps.Fonts == nil {
		return nil, ErrMissingDependency
	}
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return nil, ErrAlreadyStarted
	}
	a.started = true
	a.mu.Unlock()

	w, h := a.deps.Host.Size()
	cam := camera.NewPerspective(a.opts.Fov, 1, a.opts.Near, a.opts.Far)
	s := scene.New()
	s.Background = a.opts.Background
	a.sc = &SceneContext{Scene: s, Camera: cam, Renderer: a.deps.Renderer}
	ApplySize(cam, a.deps.Renderer, w, h)

	a.blankFrame = a.deps.Host.RequestFrame(func(float64) {
		a.blankFrame = 0
		a.deps.Renderer.Render(s, cam)
	})

	loadCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.log.Info("loading font", zap.String("path", fontLabel(a.opts.FontPath)))
	req := a.deps.Fonts.Load(loadCtx, a.opts.FontPath, a.progress)
	a.req = req

	go func() {
		<-req.Done()
		a.deps.Host.Post(func() { a.finish(req) })
	}()

	return a.dispose, nil
}

func (a *Assembler) progress(loaded, total int64) {
	a.log.Debug("font loading", zap.Int64("loaded", loaded), zap.Int64("total", total))
}

// finish runs on the render thread once the font request completes.
func (a *Assembler) finish(req *font.Request) {
	if st := a.State(); st != StateLoading {
		a.log.Debug("dropping font result", zap.Stringer("state", st))
		return
	}

	f, err := req.Result()
	if err != nil {
		if errors.Is(err, font.ErrCancelled) {
			a.log.Debug("font load cancelled")
			return
		}
		a.log.Error("font load failed", zap.String("path", fontLabel(req.Path())), zap.Error(err))
		return
	}

	if err := a.assemble(f); err != nil {
		a.log.Error("scene assembly failed", zap.Error(err))
		return
	}

	a.mu.Lock()
	a.state = StateReady
	a.mu.Unlock()
	a.log.Info("scene ready",
		zap.String("font", f.Family()),
		zap.Int("blocks", len(a.sc.Blocks)),
		zap.Float32("distance", FitDistance(a.sc.Bounds, a.sc.Camera.Fov)),
	)

	if a.deps.OnReady != nil {
		a.deps.OnReady(a.sc)
	}
}

func (a *Assembler) assemble(f font.Font) error {
	sc := a.sc
	host := a.deps.Host

	blocks, err := a.opts.TextStyle.Stack(a.opts.Texts, f, a.opts.RowSpacing)
	if err != nil {
		return err
	}
	p := a.opts.DecorativePosition
	deco := a.opts.Decorative.Build(p[0], p[1], p[2])

	sc.Scene.Add(blocks...)
	sc.Scene.Add(deco)
	sc.Blocks = blocks
	sc.Decorative = deco

	sc.Bounds = AccumulateBounds(append(blocks, deco)...)
	center := FitCamera(sc.Bounds, sc.Camera)
	if a.opts.ShowBounds {
		sc.Scene.Add(debug.BoxHelper(sc.Bounds, 0))
	}

	if rel, ok := a.deps.Renderer.(geometryReleaser); ok {
		sc.onRelease(func() {
			sc.Scene.Traverse(func(n *scene.Node) {
				if n.IsMesh() {
					rel.Release(n.Geometry)
				}
			})
		})
	}

	copts := a.opts.Controls
	if _, h := host.Size(); copts.ViewportHeight == 0 {
		copts.ViewportHeight = h
	}
	sc.Controls = BindControls(sc.Camera, host, center, copts)
	sc.onRelease(sc.Controls.Dispose)

	// catch up with resizes that happened while the font loaded
	w, h := host.Size()
	ApplySize(sc.Camera, sc.Renderer, w, h)
	sc.onRelease(InstallResize(host, sc.Camera, sc.Renderer))
	sc.onRelease(StartRenderLoop(host, sc, a.opts.Spin))
	return nil
}

func (a *Assembler) dispose() {
	a.once.Do(func() {
		a.mu.Lock()
		prev := a.state
		a.state = StateDisposed
		a.mu.Unlock()

		if a.cancel != nil {
			a.cancel()
		}
		if a.req != nil {
			a.req.Cancel()
		}
		if a.blankFrame != 0 {
			a.deps.Host.CancelFrame(a.blankFrame)
			a.blankFrame = 0
		}
		if a.sc != nil {
			a.sc.release()
		}
		a.log.Info("scene disposed", zap.Stringer("from", prev))
	})
}

func fontLabel(path string) string {
	if path == "" {
		return "<embedded>"
	}
	return path
}
