// Package app wires the window, renderer and host to the portfolio scene.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/folio3d/internal/config"
	"github.com/Faultbox/folio3d/internal/engine/debug"
	"github.com/Faultbox/folio3d/internal/engine/event"
	"github.com/Faultbox/folio3d/internal/engine/host"
	"github.com/Faultbox/folio3d/internal/engine/renderer"
	"github.com/Faultbox/folio3d/internal/engine/window"
	"github.com/Faultbox/folio3d/internal/folio"
	"github.com/Faultbox/folio3d/internal/font"
	"github.com/Faultbox/folio3d/internal/logger"
)

// Title is the window title.
const Title = "folio3d"

// App is the running application.
type App struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	host     *host.Host
	log      *zap.Logger

	shots          *debug.ScreenshotCapture
	fps            *debug.FPSCounter
	wantScreenshot bool
}

// New opens the window and creates the renderer.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		log:   logger.Named("app"),
		shots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "folio"),
		fps:   debug.NewFPSCounter(1),
	}
	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context created by the window.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:     w,
		Height:    h,
		LineWidth: cfg.Graphics.LineWidth,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.host = host.New(a.window, host.Options{FPSLimit: cfg.Graphics.FPSLimit})
	return a, nil
}

// Run assembles the scene and blocks until the window closes or ctx ends.
func (a *App) Run(ctx context.Context) error {
	fonts := font.NewLoader()
	fonts.EmbeddedIfMissing = a.cfg.Scene.Font == config.DefaultFont
	asm := folio.NewAssembler(folio.OptionsFromConfig(a.cfg), folio.Deps{
		Host:     a.host,
		Renderer: a.renderer,
		Fonts:    fonts,
		OnReady:  a.onReady,
	})

	dispose, err := asm.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start scene: %w", err)
	}
	defer dispose()

	unsubscribe := a.host.Subscribe(a.handleKey)
	defer unsubscribe()

	if err := a.host.Run(ctx); err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	a.log.Info("exiting", zap.Stringer("scene", asm.State()))
	return nil
}

// Close releases the renderer and the window.
func (a *App) Close() {
	a.log.Info("closing")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleKey(e event.Event) {
	if e.Type != event.KeyDown {
		return
	}
	switch e.Key {
	case event.KeyEscape:
		a.host.Quit()
	case event.KeyF12:
		a.wantScreenshot = true
	}
}

func (a *App) onReady(sc *folio.SceneContext) {
	sc.AfterRender = a.afterRender
}

// afterRender runs before the buffers are swapped, so the back buffer still
// holds the frame just drawn.
func (a *App) afterRender(dt float64) {
	if a.cfg.Debug.ShowFPS {
		if fps, ok := a.fps.Tick(dt); ok {
			stats := a.renderer.Stats()
			a.log.Debug("frame stats",
				zap.Float64("fps", fps),
				zap.Int("draw_calls", stats.DrawCalls),
				zap.Int("primitives", stats.Primitives),
			)
			a.window.SetTitle(fmt.Sprintf("%s (%.0f fps)", Title, fps))
		}
	}

	if a.wantScreenshot {
		a.wantScreenshot = false
		pixels, w, h := a.renderer.ReadPixels()
		path, err := a.shots.CaptureFromPixels(pixels, w, h)
		if err != nil {
			a.log.Error("screenshot failed", zap.Error(err))
			return
		}
		a.log.Info("screenshot saved", zap.String("path", path))
	}
}
