// Package host runs the native event pump and frame scheduler for one window.
package host

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/folio3d/internal/engine/event"
	"github.com/Faultbox/folio3d/internal/engine/frame"
	"github.com/Faultbox/folio3d/internal/engine/input"
	"github.com/Faultbox/folio3d/internal/engine/window"
	"github.com/Faultbox/folio3d/internal/logger"
)

// idleDelay is how long an idle iteration sleeps when nothing was drawn.
const idleDelay = 10 * time.Millisecond

// Options tunes the main loop.
type Options struct {
	// FPSLimit caps the frame rate when positive. VSync usually caps it already.
	FPSLimit int
}

// Host owns the main loop. Frame callbacks, posted functions and event
// handlers all run on the thread that calls Run.
type Host struct {
	window  *window.Window
	input   *input.Input
	events  event.Dispatcher
	frames  frame.Scheduler
	options Options
	quit    atomic.Bool
}

// New creates a host for win.
func New(win *window.Window, opts Options) *Host {
	return &Host{
		window:  win,
		input:   input.New(),
		options: opts,
	}
}

// RequestFrame schedules cb for the next frame.
func (h *Host) RequestFrame(cb frame.Callback) frame.ID {
	return h.frames.RequestFrame(cb)
}

// CancelFrame cancels a pending frame request.
func (h *Host) CancelFrame(id frame.ID) {
	h.frames.CancelFrame(id)
}

// Post runs fn on the main thread before the next frame. Safe from any goroutine.
func (h *Host) Post(fn func()) {
	h.frames.Post(fn)
}

// Subscribe implements event.Source.
func (h *Host) Subscribe(fn event.Handler) func() {
	return h.events.Subscribe(fn)
}

// OnResize calls fn with the new drawable size whenever the window is resized.
func (h *Host) OnResize(fn func(width, height int)) func() {
	return h.events.Subscribe(func(e event.Event) {
		if e.Type == event.Resize {
			fn(e.Width, e.Height)
		}
	})
}

// toPixels rescales window coordinates to drawable pixels so pointer motion
// and viewport sizes share one unit on high-DPI displays.
func (h *Host) toPixels(e event.Event) event.Event {
	ww, _ := h.window.Size()
	dw, dh := h.window.DrawableSize()
	if e.Type == event.Resize {
		e.Width, e.Height = dw, dh
		return e
	}
	if ww <= 0 || ww == dw {
		return e
	}
	scale := float32(dw) / float32(ww)
	e.X *= scale
	e.Y *= scale
	e.DX *= scale
	e.DY *= scale
	return e
}

// Size returns the current drawable size in pixels.
func (h *Host) Size() (int, int) {
	return h.window.DrawableSize()
}

// Quit makes Run return after the current iteration. Safe from any goroutine.
func (h *Host) Quit() {
	h.quit.Store(true)
}

// Run pumps events and ticks the frame scheduler until a quit event, a call
// to Quit, or ctx cancellation. The buffers are swapped only on iterations
// that ran a frame callback.
func (h *Host) Run(ctx context.Context) error {
	var minFrame time.Duration
	if h.options.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(h.options.FPSLimit)
	}

	logger.Info("starting main loop", zap.Int("fps_limit", h.options.FPSLimit))
	lastTime := time.Now()

	for !h.quit.Load() {
		select {
		case <-ctx.Done():
			logger.Info("main loop cancelled", zap.Error(ctx.Err()))
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if h.input.Update() {
			h.quit.Store(true)
		}
		for _, e := range h.input.Events() {
			h.events.Dispatch(h.toPixels(e))
		}

		if h.frames.Tick(dt) > 0 {
			h.window.SwapBuffers()
		} else {
			sdl.Delay(uint32(idleDelay / time.Millisecond))
		}

		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				sdl.Delay(uint32((minFrame - spent) / time.Millisecond))
			}
		}
	}

	logger.Info("main loop stopped", zap.Int("pending_frames", h.frames.Pending()))
	return nil
}
